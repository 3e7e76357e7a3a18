package service

import (
	"context"
	"testing"
	"time"

	"monjoel_backend/internal/pricebook/repository"
	"monjoel_backend/internal/pricebook/transport"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeItemStore struct {
	items  map[uuid.UUID]repository.Item
	policy *repository.SurchargePolicy
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[uuid.UUID]repository.Item)}
}

func (f *fakeItemStore) Create(_ context.Context, item repository.Item) (repository.Item, error) {
	for _, existing := range f.items {
		if existing.Code == item.Code {
			return repository.Item{}, apperr.Conflict("a pricebook item with this code already exists")
		}
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeItemStore) GetByID(_ context.Context, id uuid.UUID) (repository.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return repository.Item{}, apperr.NotFound("pricebook item not found")
	}
	return item, nil
}

func (f *fakeItemStore) List(_ context.Context, activeOnly bool) ([]repository.Item, error) {
	var out []repository.Item
	for _, item := range f.items {
		if activeOnly && !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeItemStore) Update(_ context.Context, update repository.ItemUpdate) (repository.Item, error) {
	item, ok := f.items[update.ID]
	if !ok {
		return repository.Item{}, apperr.NotFound("pricebook item not found")
	}
	if update.Label != nil {
		item.Label = *update.Label
	}
	if update.BasePriceCents != nil {
		item.BasePriceCents = *update.BasePriceCents
	}
	if update.IsActive != nil {
		item.IsActive = *update.IsActive
	}
	item.UpdatedAt = time.Now()
	f.items[update.ID] = item
	return item, nil
}

func (f *fakeItemStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return apperr.NotFound("pricebook item not found")
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemStore) GetSurchargePolicy(_ context.Context) (repository.SurchargePolicy, error) {
	if f.policy == nil {
		return repository.SurchargePolicy{}, apperr.NotFound("surcharge policy not initialized")
	}
	return *f.policy, nil
}

func (f *fakeItemStore) UpsertSurchargePolicy(_ context.Context, policy repository.SurchargePolicy) (repository.SurchargePolicy, error) {
	policy.UpdatedAt = time.Now()
	f.policy = &policy
	return policy, nil
}

func newTestService(store *fakeItemStore) *Service {
	return New(store, NewDBCatalog(store, logger.New("development")))
}

func TestCreateItemDefaultsToActive(t *testing.T) {
	svc := newTestService(newFakeItemStore())

	item, err := svc.CreateItem(context.Background(), transport.CreateItemRequest{
		Code:               "ouverture-simple",
		Label:              "Ouverture de porte claquée",
		Category:           "ouverture",
		BasePriceCents:     8900,
		DurationMinMinutes: 30,
		DurationMaxMinutes: 60,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !item.IsActive {
		t.Fatalf("expected new item to default to active")
	}
}

func TestCreateItemRejectsInvertedDuration(t *testing.T) {
	svc := newTestService(newFakeItemStore())

	_, err := svc.CreateItem(context.Background(), transport.CreateItemRequest{
		Code:               "blindage",
		Label:              "Blindage de porte",
		Category:           "securite",
		BasePriceCents:     89900,
		DurationMinMinutes: 240,
		DurationMaxMinutes: 180,
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateItemDuplicateCodeConflicts(t *testing.T) {
	svc := newTestService(newFakeItemStore())

	req := transport.CreateItemRequest{
		Code: "deplacement", Label: "Frais de déplacement",
		Category: "deplacement", BasePriceCents: 3900,
	}
	if _, err := svc.CreateItem(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CreateItem(context.Background(), req)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestPriceListGroupsByCategoryAndHidesDisplacement(t *testing.T) {
	store := newFakeItemStore()
	svc := newTestService(store)

	seed := []transport.CreateItemRequest{
		{Code: "ouverture-simple", Label: "Ouverture de porte claquée", Category: "ouverture", BasePriceCents: 8900},
		{Code: "ouverture-blindee", Label: "Ouverture de porte blindée", Category: "ouverture", BasePriceCents: 14900},
		{Code: "blindage", Label: "Blindage de porte", Category: "securite", BasePriceCents: 89900},
		{Code: "deplacement", Label: "Frais de déplacement", Category: "deplacement", BasePriceCents: 3900},
	}
	for _, req := range seed {
		if _, err := svc.CreateItem(context.Background(), req); err != nil {
			t.Fatalf("create %s: %v", req.Code, err)
		}
	}

	list, err := svc.PriceList(context.Background())
	if err != nil {
		t.Fatalf("price list: %v", err)
	}

	total := 0
	for _, cat := range list.Categories {
		if cat.Name == "deplacement" {
			t.Fatalf("displacement must not appear on the public price list")
		}
		total += len(cat.Items)
		for _, item := range cat.Items {
			if item.Code == "ouverture-simple" && item.PriceLabel != "Dès 89 €" {
				t.Fatalf("expected price label Dès 89 €, got %q", item.PriceLabel)
			}
		}
	}
	if total != 3 {
		t.Fatalf("expected 3 listed items, got %d", total)
	}
}

func TestSurchargePolicyFallsBackToDefaults(t *testing.T) {
	svc := newTestService(newFakeItemStore())

	policy, err := svc.GetSurchargePolicy(context.Background())
	if err != nil {
		t.Fatalf("get policy: %v", err)
	}
	if policy.NightPct != 50 || policy.HolidayPct != 75 {
		t.Fatalf("expected default policy, got %+v", policy)
	}

	updated, err := svc.UpdateSurchargePolicy(context.Background(), transport.SurchargePolicyRequest{
		NightPct: 40, WeekendPct: 20, UrgentPct: 10, HolidayPct: 60,
	})
	if err != nil {
		t.Fatalf("update policy: %v", err)
	}
	if updated.NightPct != 40 {
		t.Fatalf("expected stored night pct 40, got %d", updated.NightPct)
	}

	policy, err = svc.GetSurchargePolicy(context.Background())
	if err != nil {
		t.Fatalf("get policy after update: %v", err)
	}
	if policy.WeekendPct != 20 {
		t.Fatalf("expected stored weekend pct 20, got %d", policy.WeekendPct)
	}
}

func TestServicePriceRange(t *testing.T) {
	store := newFakeItemStore()
	svc := newTestService(store)

	seed := []transport.CreateItemRequest{
		{Code: "ouverture-simple", Label: "Ouverture de porte claquée", Category: "ouverture", BasePriceCents: 8900},
		{Code: "ouverture-blindee", Label: "Ouverture de porte blindée", Category: "ouverture", BasePriceCents: 14900},
	}
	for _, req := range seed {
		if _, err := svc.CreateItem(context.Background(), req); err != nil {
			t.Fatalf("create %s: %v", req.Code, err)
		}
	}

	rng, err := svc.ServicePriceRange(context.Background(), "ouverture-de-porte")
	if err != nil {
		t.Fatalf("price range: %v", err)
	}
	if rng.FromCents != 8900 || rng.ToCents != 14900 {
		t.Fatalf("expected range 8900..14900, got %d..%d", rng.FromCents, rng.ToCents)
	}
	if rng.PriceLabel != "89 € - 149 €" {
		t.Fatalf("unexpected label %q", rng.PriceLabel)
	}

	_, err = svc.ServicePriceRange(context.Background(), "ramonage")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown slug, got %v", err)
	}
}
