package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"monjoel_backend/internal/adapters/storage"
	"monjoel_backend/internal/diagnostic/repository"
	"monjoel_backend/internal/diagnostic/transport"
	"monjoel_backend/internal/pricing"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeStore struct {
	requests      map[uuid.UUID]repository.Request
	tickets       map[uuid.UUID]repository.Ticket
	statusUpdates []string
	eventTypes    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests: map[uuid.UUID]repository.Request{},
		tickets:  map[uuid.UUID]repository.Ticket{},
	}
}

func (f *fakeStore) CreateRequest(_ context.Context, req repository.Request) (repository.Request, error) {
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeStore) UpdateRequestStatus(_ context.Context, id uuid.UUID, status string) error {
	req := f.requests[id]
	req.Status = status
	f.requests[id] = req
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeStore) GetRequest(_ context.Context, id uuid.UUID) (repository.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return repository.Request{}, apperr.NotFound("diagnostic request not found")
	}
	return req, nil
}

func (f *fakeStore) ListRequests(_ context.Context, params repository.ListParams) (repository.ListResult, error) {
	items := []repository.Request{}
	for _, req := range f.requests {
		if params.Status == "" || req.Status == params.Status {
			items = append(items, req)
		}
	}
	return repository.ListResult{Items: items, Total: len(items), Page: params.Page, PageSize: params.PageSize}, nil
}

func (f *fakeStore) CreateTicket(_ context.Context, ticket repository.Ticket) (repository.Ticket, error) {
	f.tickets[ticket.RequestID] = ticket
	return ticket, nil
}

func (f *fakeStore) GetTicketByRequest(_ context.Context, requestID uuid.UUID) (repository.Ticket, error) {
	ticket, ok := f.tickets[requestID]
	if !ok {
		return repository.Ticket{}, apperr.NotFound("diagnostic ticket not found")
	}
	return ticket, nil
}

func (f *fakeStore) SetTicketPhoto(_ context.Context, requestID uuid.UUID, fileKey string) error {
	ticket := f.tickets[requestID]
	ticket.PhotoFileKey = &fileKey
	f.tickets[requestID] = ticket
	return nil
}

func (f *fakeStore) RecordEvent(_ context.Context, eventType string, _ []byte) error {
	f.eventTypes = append(f.eventTypes, eventType)
	return nil
}

type fakeObjectStore struct {
	deleted []string
}

func (f *fakeObjectStore) GenerateUploadURL(_ context.Context, bucket, folder, fileName, _ string, _ int64) (*storage.PresignedURL, error) {
	fileKey := folder + "/" + fileName
	return &storage.PresignedURL{
		URL:       "https://minio.local/" + bucket + "/" + fileKey,
		FileKey:   fileKey,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (f *fakeObjectStore) GenerateDownloadURL(_ context.Context, bucket, fileKey string) (*storage.PresignedURL, error) {
	return &storage.PresignedURL{
		URL:       "https://minio.local/" + bucket + "/" + fileKey + "?signed",
		FileKey:   fileKey,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (f *fakeObjectStore) DeleteObject(_ context.Context, _, fileKey string) error {
	f.deleted = append(f.deleted, fileKey)
	return nil
}

func (f *fakeObjectStore) EnsureBucketExists(context.Context, string) error { return nil }
func (f *fakeObjectStore) ValidateContentType(string) error                 { return nil }
func (f *fakeObjectStore) ValidateFileSize(int64) error                     { return nil }

var _ storage.ObjectStore = (*fakeObjectStore)(nil)

func newTestService(store *fakeStore) *Service {
	engine := pricing.New(pricing.NewStaticCatalog())
	bus := events.NewInMemoryBus(logger.New("development"))
	return New(store, NewTableClassifier(), engine, bus, nil, "")
}

func newTestServiceWithPhotos(store *fakeStore, objects *fakeObjectStore) *Service {
	engine := pricing.New(pricing.NewStaticCatalog())
	bus := events.NewInMemoryBus(logger.New("development"))
	return New(store, NewTableClassifier(), engine, bus, objects, "diagnostic-photos")
}

func validDiagnoseRequest() transport.DiagnoseRequest {
	return transport.DiagnoseRequest{
		Zip:          "75011",
		City:         "Paris",
		ProblemType:  "porte-claquee",
		Description:  "Porte claquée, clés restées à l'intérieur",
		ContactName:  "Jean Dupont",
		ContactPhone: "0612345678",
		Urgency:      "normal",
	}
}

func TestDiagnose_PersistsRequestAndTicket(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	result, err := svc.Diagnose(context.Background(), validDiagnoseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(store.requests))
	}
	req := store.requests[result.RequestID]
	if req.Status != repository.StatusQuoted {
		t.Fatalf("expected final status QUOTED, got %s", req.Status)
	}
	if req.Channel != repository.ChannelWeb {
		t.Fatalf("expected channel WEB, got %s", req.Channel)
	}
	if req.Description != "[porte-claquee] Porte claquée, clés restées à l'intérieur" {
		t.Fatalf("unexpected description: %q", req.Description)
	}
	if req.ContactPhone != "+33612345678" {
		t.Fatalf("expected normalized phone +33612345678, got %s", req.ContactPhone)
	}

	ticket, ok := store.tickets[result.RequestID]
	if !ok {
		t.Fatalf("expected a ticket for the request")
	}
	if ticket.LockType != "porte-claquee" {
		t.Fatalf("expected lock type porte-claquee, got %s", ticket.LockType)
	}

	var snapshot pricing.PriceEstimate
	if err := json.Unmarshal(ticket.PricingJSON, &snapshot); err != nil {
		t.Fatalf("pricing snapshot does not decode: %v", err)
	}
	if snapshot.MinCents != result.Analysis.Pricing.MinCents {
		t.Fatalf("snapshot min %d does not match response %d", snapshot.MinCents, result.Analysis.Pricing.MinCents)
	}

	if len(store.eventTypes) != 1 || store.eventTypes[0] != "request_analyzed" {
		t.Fatalf("expected audit event request_analyzed, got %v", store.eventTypes)
	}
}

func TestDiagnose_VeryUrgentRoutesToDirectChannel(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	req := validDiagnoseRequest()
	req.Urgency = "very_urgent"

	result, err := svc.Diagnose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.requests[result.RequestID].Channel != repository.ChannelDirect {
		t.Fatalf("expected channel DIRECT, got %s", store.requests[result.RequestID].Channel)
	}
	if len(result.Analysis.RiskFlags) != 1 || result.Analysis.RiskFlags[0] != "urgent" {
		t.Fatalf("expected risk flags [urgent], got %v", result.Analysis.RiskFlags)
	}
}

func TestDiagnose_UrgencyRaisesPrice(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	normal := validDiagnoseRequest()
	urgent := validDiagnoseRequest()
	urgent.Urgency = "urgent"

	normalResult, err := svc.Diagnose(context.Background(), normal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	urgentResult, err := svc.Diagnose(context.Background(), urgent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if urgentResult.Analysis.Pricing.MinCents <= normalResult.Analysis.Pricing.MinCents {
		t.Fatalf("expected urgent price above normal, got %d vs %d",
			urgentResult.Analysis.Pricing.MinCents, normalResult.Analysis.Pricing.MinCents)
	}
	if urgentResult.Analysis.Eta.Min >= normalResult.Analysis.Eta.Min {
		t.Fatalf("expected urgent ETA below normal, got %d vs %d",
			urgentResult.Analysis.Eta.Min, normalResult.Analysis.Eta.Min)
	}
}

func TestDiagnose_EmptyUrgencyTreatedAsNormal(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	req := validDiagnoseRequest()
	req.Urgency = ""

	result, err := svc.Diagnose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Analysis.RiskFlags) != 0 {
		t.Fatalf("expected no risk flags, got %v", result.Analysis.RiskFlags)
	}
	if store.requests[result.RequestID].Channel != repository.ChannelWeb {
		t.Fatalf("expected channel WEB for empty urgency")
	}
}

func TestDiagnose_OptionalEmailNormalized(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	req := validDiagnoseRequest()
	req.ContactEmail = " Jean.Dupont@Example.COM "

	result, err := svc.Diagnose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email := store.requests[result.RequestID].ContactEmail
	if email == nil || *email != "jean.dupont@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %v", email)
	}
}

func TestGetRequest_IncludesPhotoDownloadURL(t *testing.T) {
	store := newFakeStore()
	objects := &fakeObjectStore{}
	svc := newTestServiceWithPhotos(store, objects)

	result, err := svc.Diagnose(context.Background(), validDiagnoseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := svc.GetRequest(context.Background(), result.RequestID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.PhotoURL != nil {
		t.Fatalf("expected no photo URL before an upload, got %q", *detail.PhotoURL)
	}

	presigned, err := svc.PresignPhotoUpload(context.Background(), result.RequestID, transport.PresignPhotoRequest{
		FileName:    "porte.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err = svc.GetRequest(context.Background(), result.RequestID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.PhotoURL == nil {
		t.Fatalf("expected a presigned photo URL after upload")
	}
	if !strings.Contains(*detail.PhotoURL, presigned.FileKey) {
		t.Fatalf("photo URL %q does not reference file key %q", *detail.PhotoURL, presigned.FileKey)
	}
}

func TestPresignPhotoUpload_RemovesReplacedPhoto(t *testing.T) {
	store := newFakeStore()
	objects := &fakeObjectStore{}
	svc := newTestServiceWithPhotos(store, objects)

	result, err := svc.Diagnose(context.Background(), validDiagnoseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := svc.PresignPhotoUpload(context.Background(), result.RequestID, transport.PresignPhotoRequest{
		FileName:    "avant.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objects.deleted) != 0 {
		t.Fatalf("expected no deletions after the first upload, got %v", objects.deleted)
	}

	if _, err := svc.PresignPhotoUpload(context.Background(), result.RequestID, transport.PresignPhotoRequest{
		FileName:    "apres.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   2048,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(objects.deleted) != 1 || objects.deleted[0] != first.FileKey {
		t.Fatalf("expected replaced key %q to be deleted, got %v", first.FileKey, objects.deleted)
	}
}

func TestPresignPhotoUpload_WithoutStorageConfigured(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.PresignPhotoUpload(context.Background(), uuid.New(), transport.PresignPhotoRequest{
		FileName:    "porte.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
	})
	if err == nil {
		t.Fatalf("expected an error when storage is not configured")
	}
}
