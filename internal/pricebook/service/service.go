// Package service implements pricebook management and the public price list.
package service

import (
	"context"
	"fmt"
	"time"

	"monjoel_backend/internal/pricebook/repository"
	"monjoel_backend/internal/pricebook/transport"
	"monjoel_backend/internal/pricing"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Store is the persistence surface the service needs.
type Store interface {
	CatalogStore
	Create(ctx context.Context, item repository.Item) (repository.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Item, error)
	Update(ctx context.Context, update repository.ItemUpdate) (repository.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpsertSurchargePolicy(ctx context.Context, policy repository.SurchargePolicy) (repository.SurchargePolicy, error)
}

// Service provides business logic for the pricebook.
type Service struct {
	repo    Store
	catalog *DBCatalog
}

// New creates a new pricebook service. Writes invalidate the given catalog
// cache so quotes pick up price changes promptly.
func New(repo Store, catalog *DBCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Catalog returns the provider consumed by the pricing engine.
func (s *Service) Catalog() *DBCatalog {
	return s.catalog
}

// CreateItem stores a new pricebook entry.
func (s *Service) CreateItem(ctx context.Context, req transport.CreateItemRequest) (transport.ItemResponse, error) {
	if req.DurationMaxMinutes < req.DurationMinMinutes {
		return transport.ItemResponse{}, apperr.Validation("duration max must not be below duration min")
	}

	now := time.Now()
	item := repository.Item{
		ID:                 uuid.New(),
		Code:               sanitize.Text(req.Code),
		Label:              sanitize.Text(req.Label),
		Category:           sanitize.Text(req.Category),
		BasePriceCents:     req.BasePriceCents,
		DurationMinMinutes: req.DurationMinMinutes,
		DurationMaxMinutes: req.DurationMaxMinutes,
		IsActive:           req.IsActive == nil || *req.IsActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	item, err := s.repo.Create(ctx, item)
	if err != nil {
		return transport.ItemResponse{}, err
	}
	s.catalog.Invalidate()
	return mapItemResponse(item), nil
}

// GetItem returns a single pricebook entry.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (transport.ItemResponse, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ItemResponse{}, err
	}
	return mapItemResponse(item), nil
}

// ListItems returns all pricebook entries for the admin view.
func (s *Service) ListItems(ctx context.Context) ([]transport.ItemResponse, error) {
	items, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	responses := make([]transport.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, mapItemResponse(item))
	}
	return responses, nil
}

// UpdateItem applies a partial update.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, req transport.UpdateItemRequest) (transport.ItemResponse, error) {
	item, err := s.repo.Update(ctx, repository.ItemUpdate{
		ID:                 id,
		Label:              sanitize.TextPtr(req.Label),
		Category:           sanitize.TextPtr(req.Category),
		BasePriceCents:     req.BasePriceCents,
		DurationMinMinutes: req.DurationMinMinutes,
		DurationMaxMinutes: req.DurationMaxMinutes,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return transport.ItemResponse{}, err
	}
	s.catalog.Invalidate()
	return mapItemResponse(item), nil
}

// DeleteItem removes a pricebook entry.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.catalog.Invalidate()
	return nil
}

// GetSurchargePolicy returns the current global policy, defaults included.
func (s *Service) GetSurchargePolicy(ctx context.Context) (transport.SurchargePolicyResponse, error) {
	policy, err := s.repo.GetSurchargePolicy(ctx)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			defaults := pricing.DefaultSurcharges
			return transport.SurchargePolicyResponse{
				NightPct:   defaults.NightPct,
				WeekendPct: defaults.WeekendPct,
				UrgentPct:  defaults.UrgentPct,
				HolidayPct: defaults.HolidayPct,
			}, nil
		}
		return transport.SurchargePolicyResponse{}, err
	}
	return mapPolicyResponse(policy), nil
}

// UpdateSurchargePolicy stores the global policy.
func (s *Service) UpdateSurchargePolicy(ctx context.Context, req transport.SurchargePolicyRequest) (transport.SurchargePolicyResponse, error) {
	policy, err := s.repo.UpsertSurchargePolicy(ctx, repository.SurchargePolicy{
		NightPct:   req.NightPct,
		WeekendPct: req.WeekendPct,
		UrgentPct:  req.UrgentPct,
		HolidayPct: req.HolidayPct,
	})
	if err != nil {
		return transport.SurchargePolicyResponse{}, err
	}
	s.catalog.Invalidate()
	return mapPolicyResponse(policy), nil
}

// PriceList builds the public price page grouped by category.
func (s *Service) PriceList(ctx context.Context) (transport.PriceListResponse, error) {
	items, err := s.repo.List(ctx, true)
	if err != nil {
		return transport.PriceListResponse{}, err
	}

	var categories []transport.PriceListCategory
	index := map[string]int{}
	for _, item := range items {
		if item.Code == pricing.DisplacementCode {
			continue
		}
		pos, ok := index[item.Category]
		if !ok {
			pos = len(categories)
			index[item.Category] = pos
			categories = append(categories, transport.PriceListCategory{Name: item.Category})
		}
		categories[pos].Items = append(categories[pos].Items, transport.PriceListItem{
			Code:       item.Code,
			Label:      item.Label,
			PriceLabel: fmt.Sprintf("Dès %d €", (item.BasePriceCents+50)/100),
		})
	}

	return transport.PriceListResponse{Categories: categories}, nil
}

// ServicePriceRange returns the base price range behind a service page slug.
func (s *Service) ServicePriceRange(_ context.Context, slug string) (transport.ServicePriceRangeResponse, error) {
	fromCents, toCents := pricing.PriceRangeForSlug(s.catalog, slug)
	if fromCents == 0 {
		return transport.ServicePriceRangeResponse{}, apperr.NotFound("unknown service")
	}

	label := fmt.Sprintf("%d € - %d €", (fromCents+50)/100, (toCents+50)/100)
	if fromCents == toCents {
		label = fmt.Sprintf("Dès %d €", (fromCents+50)/100)
	}

	return transport.ServicePriceRangeResponse{
		Slug:       slug,
		FromCents:  fromCents,
		ToCents:    toCents,
		PriceLabel: label,
	}, nil
}

func mapItemResponse(item repository.Item) transport.ItemResponse {
	return transport.ItemResponse{
		ID:                 item.ID,
		Code:               item.Code,
		Label:              item.Label,
		Category:           item.Category,
		BasePriceCents:     item.BasePriceCents,
		DurationMinMinutes: item.DurationMinMinutes,
		DurationMaxMinutes: item.DurationMaxMinutes,
		IsActive:           item.IsActive,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
}

func mapPolicyResponse(policy repository.SurchargePolicy) transport.SurchargePolicyResponse {
	return transport.SurchargePolicyResponse{
		NightPct:   policy.NightPct,
		WeekendPct: policy.WeekendPct,
		UrgentPct:  policy.UrgentPct,
		HolidayPct: policy.HolidayPct,
		UpdatedAt:  policy.UpdatedAt,
	}
}
