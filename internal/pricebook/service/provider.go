package service

import (
	"context"
	"sync"
	"time"

	"monjoel_backend/internal/pricebook/repository"
	"monjoel_backend/internal/pricing"
	"monjoel_backend/platform/apperr"
	"monjoel_backend/platform/logger"

	"golang.org/x/sync/singleflight"
)

const (
	catalogCacheTTL    = time.Minute
	catalogLoadTimeout = 3 * time.Second
)

// CatalogStore is the read surface the provider needs.
type CatalogStore interface {
	List(ctx context.Context, activeOnly bool) ([]repository.Item, error)
	GetSurchargePolicy(ctx context.Context) (repository.SurchargePolicy, error)
}

// DBCatalog serves the pricing engine from the pricebook table, caching
// reads for a short TTL. When the table is empty or unreachable it falls
// back to the built-in static catalog, so quoting keeps working before the
// first seed and during database incidents.
type DBCatalog struct {
	store    CatalogStore
	fallback pricing.CatalogProvider
	log      *logger.Logger
	loads    singleflight.Group

	mu         sync.RWMutex
	entries    map[string]pricing.CatalogEntry
	surcharges pricing.SurchargePolicy
	expiresAt  time.Time
}

// NewDBCatalog creates the database-backed catalog provider.
func NewDBCatalog(store CatalogStore, log *logger.Logger) *DBCatalog {
	return &DBCatalog{
		store:    store,
		fallback: pricing.NewStaticCatalog(),
		log:      log,
	}
}

// Entry resolves a service code against the cached pricebook.
func (c *DBCatalog) Entry(code string) (pricing.CatalogEntry, bool) {
	entries, _ := c.snapshot()
	if entries == nil {
		return c.fallback.Entry(code)
	}
	entry, ok := entries[code]
	return entry, ok
}

// Surcharges returns the stored global policy.
func (c *DBCatalog) Surcharges() pricing.SurchargePolicy {
	_, policy := c.snapshot()
	return policy
}

// Invalidate drops the cache so the next read reloads from the database.
// Called by the admin service after writes.
func (c *DBCatalog) Invalidate() {
	c.mu.Lock()
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

func (c *DBCatalog) snapshot() (map[string]pricing.CatalogEntry, pricing.SurchargePolicy) {
	c.mu.RLock()
	if time.Now().Before(c.expiresAt) {
		entries, policy := c.entries, c.surcharges
		c.mu.RUnlock()
		return entries, policy
	}
	c.mu.RUnlock()

	// Concurrent cache misses collapse into a single reload.
	_, _, _ = c.loads.Do("reload", func() (any, error) {
		c.reload()
		return nil, nil
	})

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries, c.surcharges
}

func (c *DBCatalog) reload() {
	c.mu.RLock()
	fresh := time.Now().Before(c.expiresAt)
	c.mu.RUnlock()
	if fresh {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()

	items, err := c.store.List(ctx, true)
	if err != nil || len(items) == 0 {
		if err != nil {
			c.log.Error("pricebook load failed, using static catalog", "error", err)
		}
		c.mu.Lock()
		c.entries = nil
		c.surcharges = c.fallback.Surcharges()
		c.expiresAt = time.Now().Add(catalogCacheTTL)
		c.mu.Unlock()
		return
	}

	entries := make(map[string]pricing.CatalogEntry, len(items))
	for _, item := range items {
		entries[item.Code] = pricing.CatalogEntry{
			Code:           item.Code,
			BasePriceCents: item.BasePriceCents,
			Duration: pricing.DurationRange{
				Min: item.DurationMinMinutes,
				Max: item.DurationMaxMinutes,
			},
		}
	}

	policy := c.fallback.Surcharges()
	stored, err := c.store.GetSurchargePolicy(ctx)
	switch {
	case err == nil:
		policy = pricing.SurchargePolicy{
			NightPct:   stored.NightPct,
			WeekendPct: stored.WeekendPct,
			UrgentPct:  stored.UrgentPct,
			HolidayPct: stored.HolidayPct,
		}
	case !apperr.Is(err, apperr.KindNotFound):
		c.log.Error("surcharge policy load failed, using defaults", "error", err)
	}

	c.mu.Lock()
	c.entries = entries
	c.surcharges = policy
	c.expiresAt = time.Now().Add(catalogCacheTTL)
	c.mu.Unlock()
}

var _ pricing.CatalogProvider = (*DBCatalog)(nil)
