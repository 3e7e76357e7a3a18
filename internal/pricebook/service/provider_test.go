package service

import (
	"context"
	"errors"
	"testing"

	"monjoel_backend/internal/pricebook/repository"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/logger"
)

type fakeCatalogStore struct {
	items     []repository.Item
	policy    *repository.SurchargePolicy
	listErr   error
	listCalls int
}

func (f *fakeCatalogStore) List(_ context.Context, activeOnly bool) ([]repository.Item, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if !activeOnly {
		return f.items, nil
	}
	active := []repository.Item{}
	for _, item := range f.items {
		if item.IsActive {
			active = append(active, item)
		}
	}
	return active, nil
}

func (f *fakeCatalogStore) GetSurchargePolicy(_ context.Context) (repository.SurchargePolicy, error) {
	if f.policy == nil {
		return repository.SurchargePolicy{}, apperr.NotFound("surcharge policy not initialized")
	}
	return *f.policy, nil
}

func TestDBCatalog_ServesStoredItems(t *testing.T) {
	store := &fakeCatalogStore{
		items: []repository.Item{
			{Code: "ouverture-simple", BasePriceCents: 9900, DurationMinMinutes: 30, DurationMaxMinutes: 60, IsActive: true},
			{Code: "blindage", BasePriceCents: 99900, IsActive: false},
		},
	}
	catalog := NewDBCatalog(store, logger.New("development"))

	entry, ok := catalog.Entry("ouverture-simple")
	if !ok {
		t.Fatalf("expected ouverture-simple to resolve")
	}
	if entry.BasePriceCents != 9900 {
		t.Fatalf("expected stored price 9900, got %d", entry.BasePriceCents)
	}

	// Inactive items are invisible to the engine.
	if _, ok := catalog.Entry("blindage"); ok {
		t.Fatalf("expected inactive item to be hidden")
	}
}

func TestDBCatalog_CachesBetweenReads(t *testing.T) {
	store := &fakeCatalogStore{
		items: []repository.Item{
			{Code: "ouverture-simple", BasePriceCents: 8900, IsActive: true},
		},
	}
	catalog := NewDBCatalog(store, logger.New("development"))

	catalog.Entry("ouverture-simple")
	catalog.Entry("ouverture-simple")
	catalog.Surcharges()

	if store.listCalls != 1 {
		t.Fatalf("expected 1 load within the TTL, got %d", store.listCalls)
	}

	catalog.Invalidate()
	catalog.Entry("ouverture-simple")
	if store.listCalls != 2 {
		t.Fatalf("expected reload after invalidation, got %d loads", store.listCalls)
	}
}

func TestDBCatalog_FallsBackWhenEmpty(t *testing.T) {
	catalog := NewDBCatalog(&fakeCatalogStore{}, logger.New("development"))

	entry, ok := catalog.Entry("ouverture-simple")
	if !ok {
		t.Fatalf("expected static fallback to resolve ouverture-simple")
	}
	if entry.BasePriceCents != 8900 {
		t.Fatalf("expected static price 8900, got %d", entry.BasePriceCents)
	}
}

func TestDBCatalog_FallsBackOnError(t *testing.T) {
	store := &fakeCatalogStore{listErr: errors.New("connection refused")}
	catalog := NewDBCatalog(store, logger.New("development"))

	if _, ok := catalog.Entry("deplacement"); !ok {
		t.Fatalf("expected static fallback on load error")
	}
	policy := catalog.Surcharges()
	if policy.NightPct != 50 {
		t.Fatalf("expected default night pct 50, got %d", policy.NightPct)
	}
}

func TestDBCatalog_UsesStoredPolicy(t *testing.T) {
	store := &fakeCatalogStore{
		items: []repository.Item{
			{Code: "ouverture-simple", BasePriceCents: 8900, IsActive: true},
		},
		policy: &repository.SurchargePolicy{NightPct: 40, WeekendPct: 20, UrgentPct: 10, HolidayPct: 60},
	}
	catalog := NewDBCatalog(store, logger.New("development"))

	policy := catalog.Surcharges()
	if policy.NightPct != 40 || policy.HolidayPct != 60 {
		t.Fatalf("expected stored policy 40/60, got %d/%d", policy.NightPct, policy.HolidayPct)
	}
}
