package service

import (
	"context"
	"testing"

	"monjoel_backend/internal/contact/repository"
	"monjoel_backend/internal/contact/transport"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/logger"
)

type fakeStore struct {
	submissions []repository.Submission
	eventTypes  []string
}

func (f *fakeStore) Create(_ context.Context, submission repository.Submission) (repository.Submission, error) {
	f.submissions = append(f.submissions, submission)
	return submission, nil
}

func (f *fakeStore) List(_ context.Context, params repository.ListParams) (repository.ListResult, error) {
	return repository.ListResult{Items: f.submissions, Total: len(f.submissions), Page: params.Page, PageSize: params.PageSize}, nil
}

func (f *fakeStore) RecordEvent(_ context.Context, eventType string, _ []byte) error {
	f.eventTypes = append(f.eventTypes, eventType)
	return nil
}

func newTestService(store *fakeStore) *Service {
	return New(store, events.NewInMemoryBus(logger.New("development")))
}

func TestSubmit_PersistsAndRecordsEvent(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	result, err := svc.Submit(context.Background(), transport.SubmitContactRequest{
		Name:        "Marie Martin",
		Email:       " Marie.Martin@Example.COM ",
		Subject:     "Demande de devis",
		Message:     "Bonjour, je souhaite un devis pour un blindage de porte.",
		ConsentRGPD: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID.String() == "" {
		t.Fatalf("expected a submission ID")
	}

	if len(store.submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(store.submissions))
	}
	stored := store.submissions[0]
	if stored.Email != "marie.martin@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", stored.Email)
	}
	if stored.Phone != nil {
		t.Fatalf("expected nil phone when omitted, got %v", stored.Phone)
	}
	if !stored.ConsentRGPD {
		t.Fatalf("expected consent to be stored")
	}

	if len(store.eventTypes) != 1 || store.eventTypes[0] != "contact_form_submitted" {
		t.Fatalf("expected audit event contact_form_submitted, got %v", store.eventTypes)
	}
}

func TestSubmit_NormalizesPhone(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, err := svc.Submit(context.Background(), transport.SubmitContactRequest{
		Name:        "Marie Martin",
		Email:       "marie@example.com",
		Phone:       "06 12 34 56 78",
		Subject:     "Rappel",
		Message:     "Merci de me rappeler au sujet de ma serrure.",
		ConsentRGPD: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	phone := store.submissions[0].Phone
	if phone == nil || *phone != "+33612345678" {
		t.Fatalf("expected normalized phone +33612345678, got %v", phone)
	}
}
