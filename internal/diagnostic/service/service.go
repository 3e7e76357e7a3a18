// Package service implements the diagnostic intake flow: classify the
// problem, quote a price and ETA, persist the request with its analysis
// ticket, and notify the rest of the system.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"monjoel_backend/internal/adapters/storage"
	"monjoel_backend/internal/diagnostic/repository"
	"monjoel_backend/internal/diagnostic/transport"
	"monjoel_backend/internal/pricing"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/phone"
	"monjoel_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20

	// UrgencyVeryUrgent routes the request to the DIRECT dispatch channel.
	UrgencyVeryUrgent = "very_urgent"
	urgencyNormal     = "normal"
)

// Store is the persistence surface the service needs.
type Store interface {
	CreateRequest(ctx context.Context, req repository.Request) (repository.Request, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) error
	GetRequest(ctx context.Context, id uuid.UUID) (repository.Request, error)
	ListRequests(ctx context.Context, params repository.ListParams) (repository.ListResult, error)
	CreateTicket(ctx context.Context, ticket repository.Ticket) (repository.Ticket, error)
	GetTicketByRequest(ctx context.Context, requestID uuid.UUID) (repository.Ticket, error)
	SetTicketPhoto(ctx context.Context, requestID uuid.UUID, fileKey string) error
	RecordEvent(ctx context.Context, eventType string, payload []byte) error
}

// Service provides business logic for diagnostic intake.
type Service struct {
	repo        Store
	classifier  Classifier
	engine      *pricing.Engine
	eventBus    events.Bus
	store       storage.ObjectStore
	photoBucket string
}

// New creates a new diagnostic service. The storage service may be nil when
// photo upload is not configured.
func New(repo Store, classifier Classifier, engine *pricing.Engine, eventBus events.Bus, store storage.ObjectStore, photoBucket string) *Service {
	return &Service{
		repo:        repo,
		classifier:  classifier,
		engine:      engine,
		eventBus:    eventBus,
		store:       store,
		photoBucket: photoBucket,
	}
}

// Diagnose runs the full intake flow for a submitted problem.
func (s *Service) Diagnose(ctx context.Context, req transport.DiagnoseRequest) (transport.DiagnoseResponse, error) {
	normalizedPhone := phone.NormalizeE164(req.ContactPhone)

	urgency := req.Urgency
	if urgency == "" {
		urgency = urgencyNormal
	}
	isUrgent := urgency != urgencyNormal

	channel := repository.ChannelWeb
	if urgency == UrgencyVeryUrgent {
		channel = repository.ChannelDirect
	}

	now := time.Now()
	dbRequest := repository.Request{
		ID:           uuid.New(),
		Status:       repository.StatusAnalyzing,
		Channel:      channel,
		Description:  fmt.Sprintf("[%s] %s", req.ProblemType, sanitize.Text(req.Description)),
		Zip:          strings.TrimSpace(req.Zip),
		City:         sanitize.Text(req.City),
		ContactName:  sanitize.Text(req.ContactName),
		ContactPhone: normalizedPhone,
		ContactEmail: optionalEmail(req.ContactEmail),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	dbRequest, err := s.repo.CreateRequest(ctx, dbRequest)
	if err != nil {
		return transport.DiagnoseResponse{}, err
	}

	classification, err := s.classifier.Classify(ctx, ClassifierInput{
		ProblemType: req.ProblemType,
		Description: req.Description,
		IsUrgent:    isUrgent,
	})
	if err != nil {
		return transport.DiagnoseResponse{}, apperr.Wrap(apperr.KindInternal, "classification failed", err)
	}

	priceEstimate := s.engine.CalculateEstimate(classification.ServiceCode, pricing.Flags{IsUrgent: isUrgent})
	etaEstimate := s.engine.CalculateETA(classification.ServiceCode, pricing.ETAFlags{IsUrgent: isUrgent})

	pricingJSON, err := json.Marshal(priceEstimate)
	if err != nil {
		return transport.DiagnoseResponse{}, apperr.Wrap(apperr.KindInternal, "failed to encode pricing", err)
	}
	etaJSON, err := json.Marshal(etaEstimate)
	if err != nil {
		return transport.DiagnoseResponse{}, apperr.Wrap(apperr.KindInternal, "failed to encode eta", err)
	}

	notes := classification.Notes
	ticket := repository.Ticket{
		ID:          uuid.New(),
		RequestID:   dbRequest.ID,
		LockType:    classification.LockType,
		Brand:       classification.Brand,
		Confidence:  classification.Confidence,
		PricingJSON: pricingJSON,
		EtaJSON:     etaJSON,
		RiskFlags:   classification.RiskFlags,
		AINotes:     &notes,
		CreatedAt:   time.Now(),
	}
	ticket, err = s.repo.CreateTicket(ctx, ticket)
	if err != nil {
		return transport.DiagnoseResponse{}, err
	}

	if err := s.repo.UpdateRequestStatus(ctx, dbRequest.ID, repository.StatusQuoted); err != nil {
		return transport.DiagnoseResponse{}, err
	}

	auditPayload, _ := json.Marshal(map[string]interface{}{
		"requestId":   dbRequest.ID,
		"ticketId":    ticket.ID,
		"problemType": req.ProblemType,
	})
	if err := s.repo.RecordEvent(ctx, "request_analyzed", auditPayload); err != nil {
		return transport.DiagnoseResponse{}, err
	}

	s.eventBus.Publish(ctx, RequestAnalyzedEvent{
		BaseEvent:    events.NewBaseEvent(),
		RequestID:    dbRequest.ID,
		TicketID:     ticket.ID,
		ProblemType:  req.ProblemType,
		City:         dbRequest.City,
		Zip:          dbRequest.Zip,
		ContactName:  dbRequest.ContactName,
		ContactPhone: dbRequest.ContactPhone,
		Urgent:       isUrgent,
		PriceLabel:   pricing.FormatPriceEstimate(priceEstimate),
		EtaLabel:     pricing.FormatETA(etaEstimate),
	})

	return transport.DiagnoseResponse{
		RequestID: dbRequest.ID,
		Analysis: transport.AnalysisResponse{
			LockType:   classification.LockType,
			Brand:      classification.Brand,
			Confidence: classification.Confidence,
			Pricing:    priceEstimate,
			Eta:        etaEstimate,
			RiskFlags:  emptyIfNil(classification.RiskFlags),
			Notes:      &notes,
		},
		Message: "Diagnostic effectué avec succès.",
	}, nil
}

// PresignPhotoUpload returns a presigned slot for attaching a photo to an
// existing request.
func (s *Service) PresignPhotoUpload(ctx context.Context, requestID uuid.UUID, req transport.PresignPhotoRequest) (transport.PresignPhotoResponse, error) {
	if s.store == nil {
		return transport.PresignPhotoResponse{}, apperr.New(apperr.KindBadRequest, "photo upload is not configured")
	}

	if _, err := s.repo.GetRequest(ctx, requestID); err != nil {
		return transport.PresignPhotoResponse{}, err
	}

	ticket, err := s.repo.GetTicketByRequest(ctx, requestID)
	if err != nil && !apperr.Is(err, apperr.KindNotFound) {
		return transport.PresignPhotoResponse{}, err
	}

	presigned, err := s.store.GenerateUploadURL(ctx, s.photoBucket, requestID.String(), req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		return transport.PresignPhotoResponse{}, apperr.Wrap(apperr.KindValidation, "cannot presign upload", err)
	}

	// Re-uploading a photo orphans the previous object, so drop it.
	if ticket.PhotoFileKey != nil {
		if err := s.store.DeleteObject(ctx, s.photoBucket, *ticket.PhotoFileKey); err != nil {
			return transport.PresignPhotoResponse{}, apperr.Wrap(apperr.KindInternal, "cannot remove replaced photo", err)
		}
	}

	if err := s.repo.SetTicketPhoto(ctx, requestID, presigned.FileKey); err != nil {
		return transport.PresignPhotoResponse{}, err
	}

	return transport.PresignPhotoResponse{
		URL:       presigned.URL,
		FileKey:   presigned.FileKey,
		ExpiresAt: presigned.ExpiresAt,
	}, nil
}

// ListRequests returns the paginated admin view.
func (s *Service) ListRequests(ctx context.Context, req transport.ListRequestsRequest) (transport.ListRequestsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	result, err := s.repo.ListRequests(ctx, repository.ListParams{
		Status:   req.Status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return transport.ListRequestsResponse{}, err
	}

	items := make([]transport.RequestSummary, 0, len(result.Items))
	for _, r := range result.Items {
		items = append(items, mapRequestSummary(r))
	}

	return transport.ListRequestsResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

// GetRequest returns the admin detail view with the analysis ticket.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (transport.RequestDetail, error) {
	dbRequest, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return transport.RequestDetail{}, err
	}

	detail := transport.RequestDetail{
		RequestSummary: mapRequestSummary(dbRequest),
		Description:    dbRequest.Description,
		ContactEmail:   dbRequest.ContactEmail,
	}

	ticket, err := s.repo.GetTicketByRequest(ctx, id)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return detail, nil
		}
		return transport.RequestDetail{}, err
	}

	var priceEstimate pricing.PriceEstimate
	var etaEstimate pricing.ETAEstimate
	if err := json.Unmarshal(ticket.PricingJSON, &priceEstimate); err != nil {
		return transport.RequestDetail{}, apperr.Wrap(apperr.KindInternal, "corrupt pricing snapshot", err)
	}
	if err := json.Unmarshal(ticket.EtaJSON, &etaEstimate); err != nil {
		return transport.RequestDetail{}, apperr.Wrap(apperr.KindInternal, "corrupt eta snapshot", err)
	}

	detail.Ticket = &transport.AnalysisResponse{
		LockType:   ticket.LockType,
		Brand:      ticket.Brand,
		Confidence: ticket.Confidence,
		Pricing:    priceEstimate,
		Eta:        etaEstimate,
		RiskFlags:  emptyIfNil(ticket.RiskFlags),
		Notes:      ticket.AINotes,
	}

	if ticket.PhotoFileKey != nil && s.store != nil {
		photo, err := s.store.GenerateDownloadURL(ctx, s.photoBucket, *ticket.PhotoFileKey)
		if err != nil {
			return transport.RequestDetail{}, apperr.Wrap(apperr.KindInternal, "cannot presign photo download", err)
		}
		detail.PhotoURL = &photo.URL
	}
	return detail, nil
}

func mapRequestSummary(r repository.Request) transport.RequestSummary {
	return transport.RequestSummary{
		ID:           r.ID,
		Status:       r.Status,
		Channel:      r.Channel,
		Zip:          r.Zip,
		City:         r.City,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		CreatedAt:    r.CreatedAt,
	}
}

func optionalEmail(email string) *string {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func emptyIfNil(flags []string) []string {
	if flags == nil {
		return []string{}
	}
	return flags
}
