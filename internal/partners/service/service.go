// Package service implements artisan partner application intake and review.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"monjoel_backend/internal/partners/repository"
	"monjoel_backend/internal/partners/transport"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/phone"
	"monjoel_backend/platform/sanitize"

	"github.com/google/uuid"
)

const defaultPageSize = 20

// EventApplicationSubmitted is published after an application is stored.
const EventApplicationSubmitted = "partners.application_submitted"

// ApplicationSubmittedEvent carries the bus payload for a new application.
type ApplicationSubmittedEvent struct {
	events.BaseEvent
	ApplicationID uuid.UUID
	CompanyName   string
	Email         string
}

// EventName returns the bus topic for this event.
func (e ApplicationSubmittedEvent) EventName() string {
	return EventApplicationSubmitted
}

// Store is the persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, application repository.Application) (repository.Application, error)
	ExistsBySIRET(ctx context.Context, siret string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Application, error)
	List(ctx context.Context, params repository.ListParams) (repository.ListResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (repository.Application, error)
	RecordEvent(ctx context.Context, eventType string, payload []byte) error
}

// Service provides business logic for artisan applications.
type Service struct {
	repo     Store
	eventBus events.Bus
}

// New creates a new partners service.
func New(repo Store, eventBus events.Bus) *Service {
	return &Service{repo: repo, eventBus: eventBus}
}

// Apply stores a new artisan application after SIRET validation.
func (s *Service) Apply(ctx context.Context, req transport.ApplyRequest) (transport.ApplyResponse, error) {
	siret := NormalizeSIRET(req.SIRET)
	if err := ValidateSIRET(siret); err != nil {
		return transport.ApplyResponse{}, err
	}

	exists, err := s.repo.ExistsBySIRET(ctx, siret)
	if err != nil {
		return transport.ApplyResponse{}, err
	}
	if exists {
		return transport.ApplyResponse{}, apperr.Conflict("Une candidature existe déjà avec ce numéro SIRET.")
	}

	now := time.Now()
	application := repository.Application{
		ID:          uuid.New(),
		CompanyName: sanitize.Text(req.CompanyName),
		SIRET:       siret,
		ContactName: sanitize.Text(req.ContactName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       phone.NormalizeE164(req.Phone),
		Zones:       sanitize.Text(req.Zones),
		Message:     optionalText(req.Message),
		Status:      repository.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	application, err = s.repo.Create(ctx, application)
	if err != nil {
		return transport.ApplyResponse{}, err
	}

	auditPayload, _ := json.Marshal(map[string]interface{}{
		"applicationId": application.ID,
		"companyName":   application.CompanyName,
	})
	if err := s.repo.RecordEvent(ctx, "artisan_application_submitted", auditPayload); err != nil {
		return transport.ApplyResponse{}, err
	}

	s.eventBus.Publish(ctx, ApplicationSubmittedEvent{
		BaseEvent:     events.NewBaseEvent(),
		ApplicationID: application.ID,
		CompanyName:   application.CompanyName,
		Email:         application.Email,
	})

	return transport.ApplyResponse{
		ID:      application.ID,
		Message: "Votre candidature a bien été reçue. Nous vous contacterons sous 48h.",
	}, nil
}

// List returns the paginated admin view.
func (s *Service) List(ctx context.Context, req transport.ListApplicationsRequest) (transport.ListApplicationsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	result, err := s.repo.List(ctx, repository.ListParams{
		Status:   req.Status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return transport.ListApplicationsResponse{}, err
	}

	items := make([]transport.ApplicationResponse, 0, len(result.Items))
	for _, application := range result.Items {
		items = append(items, mapApplicationResponse(application))
	}

	return transport.ListApplicationsResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

// GetByID returns a single application.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.ApplicationResponse, error) {
	application, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ApplicationResponse{}, err
	}
	return mapApplicationResponse(application), nil
}

// UpdateStatus applies an admin decision.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req transport.UpdateStatusRequest) (transport.ApplicationResponse, error) {
	application, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return transport.ApplicationResponse{}, err
	}
	return mapApplicationResponse(application), nil
}

func mapApplicationResponse(application repository.Application) transport.ApplicationResponse {
	return transport.ApplicationResponse{
		ID:          application.ID,
		CompanyName: application.CompanyName,
		SIRET:       application.SIRET,
		ContactName: application.ContactName,
		Email:       application.Email,
		Phone:       application.Phone,
		Zones:       application.Zones,
		Message:     application.Message,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}

func optionalText(raw string) *string {
	cleaned := sanitize.Text(raw)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
