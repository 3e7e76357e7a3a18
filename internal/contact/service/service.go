// Package service implements contact form persistence and notification.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"monjoel_backend/internal/contact/repository"
	"monjoel_backend/internal/contact/transport"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/phone"
	"monjoel_backend/platform/sanitize"

	"github.com/google/uuid"
)

const defaultPageSize = 20

// EventContactSubmitted is published after a contact form is stored.
const EventContactSubmitted = "contact.submitted"

// ContactSubmittedEvent carries the bus payload for a stored submission.
type ContactSubmittedEvent struct {
	events.BaseEvent
	SubmissionID uuid.UUID
	Name         string
	Email        string
	Subject      string
}

// EventName returns the bus topic for this event.
func (e ContactSubmittedEvent) EventName() string {
	return EventContactSubmitted
}

// Store is the persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, submission repository.Submission) (repository.Submission, error)
	List(ctx context.Context, params repository.ListParams) (repository.ListResult, error)
	RecordEvent(ctx context.Context, eventType string, payload []byte) error
}

// Service provides business logic for contact submissions.
type Service struct {
	repo     Store
	eventBus events.Bus
}

// New creates a new contact service.
func New(repo Store, eventBus events.Bus) *Service {
	return &Service{repo: repo, eventBus: eventBus}
}

// Submit stores a contact submission and publishes the notification event.
func (s *Service) Submit(ctx context.Context, req transport.SubmitContactRequest) (transport.SubmitContactResponse, error) {
	submission := repository.Submission{
		ID:          uuid.New(),
		Name:        sanitize.Text(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       optionalPhone(req.Phone),
		Subject:     sanitize.Text(req.Subject),
		Message:     sanitize.Text(req.Message),
		ConsentRGPD: req.ConsentRGPD,
		CreatedAt:   time.Now(),
	}

	submission, err := s.repo.Create(ctx, submission)
	if err != nil {
		return transport.SubmitContactResponse{}, err
	}

	auditPayload, _ := json.Marshal(map[string]interface{}{
		"submissionId": submission.ID,
		"subject":      submission.Subject,
	})
	if err := s.repo.RecordEvent(ctx, "contact_form_submitted", auditPayload); err != nil {
		return transport.SubmitContactResponse{}, err
	}

	s.eventBus.Publish(ctx, ContactSubmittedEvent{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: submission.ID,
		Name:         submission.Name,
		Email:        submission.Email,
		Subject:      submission.Subject,
	})

	return transport.SubmitContactResponse{
		ID:      submission.ID,
		Message: "Votre message a bien été envoyé. Nous vous répondrons dans les plus brefs délais.",
	}, nil
}

// List returns the paginated admin view.
func (s *Service) List(ctx context.Context, req transport.ListSubmissionsRequest) (transport.ListSubmissionsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	result, err := s.repo.List(ctx, repository.ListParams{Page: page, PageSize: pageSize})
	if err != nil {
		return transport.ListSubmissionsResponse{}, err
	}

	items := make([]transport.SubmissionResponse, 0, len(result.Items))
	for _, submission := range result.Items {
		items = append(items, transport.SubmissionResponse{
			ID:          submission.ID,
			Name:        submission.Name,
			Email:       submission.Email,
			Phone:       submission.Phone,
			Subject:     submission.Subject,
			Message:     submission.Message,
			ConsentRGPD: submission.ConsentRGPD,
			SourceUTM:   submission.SourceUTM,
			CreatedAt:   submission.CreatedAt,
		})
	}

	return transport.ListSubmissionsResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

func optionalPhone(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	normalized := phone.NormalizeE164(trimmed)
	return &normalized
}
