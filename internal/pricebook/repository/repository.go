package repository

import (
	"context"
	"errors"
	"time"

	"monjoel_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemNotFoundMsg = "pricebook item not found"

const uniqueViolation = "23505"

// Repository provides database operations for the pricebook.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new pricebook repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Item struct {
	ID                 uuid.UUID
	Code               string
	Label              string
	Category           string
	BasePriceCents     int64
	DurationMinMinutes int
	DurationMaxMinutes int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ItemUpdate struct {
	ID                 uuid.UUID
	Label              *string
	Category           *string
	BasePriceCents     *int64
	DurationMinMinutes *int
	DurationMaxMinutes *int
	IsActive           *bool
}

type SurchargePolicy struct {
	NightPct   int
	WeekendPct int
	UrgentPct  int
	HolidayPct int
	UpdatedAt  time.Time
}

const itemColumns = `
	id, code, label, category, base_price_cents,
	duration_min_minutes, duration_max_minutes, is_active,
	created_at, updated_at
`

func scanItem(row pgx.Row) (Item, error) {
	var item Item
	err := row.Scan(
		&item.ID, &item.Code, &item.Label, &item.Category, &item.BasePriceCents,
		&item.DurationMinMinutes, &item.DurationMaxMinutes, &item.IsActive,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *Repository) Create(ctx context.Context, item Item) (Item, error) {
	query := `
		INSERT INTO pricebook_items (
			id, code, label, category, base_price_cents,
			duration_min_minutes, duration_max_minutes, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Code,
		item.Label,
		item.Category,
		item.BasePriceCents,
		item.DurationMinMinutes,
		item.DurationMaxMinutes,
		item.IsActive,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Item{}, apperr.Conflict("a pricebook item with this code already exists")
		}
		return Item{}, apperr.Wrap(apperr.KindInternal, "failed to create pricebook item", err)
	}
	return item, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM pricebook_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMsg)
		}
		return Item{}, apperr.Wrap(apperr.KindInternal, "failed to get pricebook item", err)
	}
	return item, nil
}

func (r *Repository) List(ctx context.Context, activeOnly bool) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM pricebook_items`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY category, base_price_cents`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list pricebook items", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan pricebook item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to iterate pricebook items", err)
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, update ItemUpdate) (Item, error) {
	query := `
		UPDATE pricebook_items SET
			label = COALESCE($2, label),
			category = COALESCE($3, category),
			base_price_cents = COALESCE($4, base_price_cents),
			duration_min_minutes = COALESCE($5, duration_min_minutes),
			duration_max_minutes = COALESCE($6, duration_max_minutes),
			is_active = COALESCE($7, is_active),
			updated_at = $8
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		update.ID,
		update.Label,
		update.Category,
		update.BasePriceCents,
		update.DurationMinMinutes,
		update.DurationMaxMinutes,
		update.IsActive,
		time.Now(),
	)
	if err != nil {
		return Item{}, apperr.Wrap(apperr.KindInternal, "failed to update pricebook item", err)
	}
	if tag.RowsAffected() == 0 {
		return Item{}, apperr.NotFound(itemNotFoundMsg)
	}
	return r.GetByID(ctx, update.ID)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pricebook_items WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete pricebook item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(itemNotFoundMsg)
	}
	return nil
}

// GetSurchargePolicy returns the single global policy row.
func (r *Repository) GetSurchargePolicy(ctx context.Context) (SurchargePolicy, error) {
	var policy SurchargePolicy
	err := r.pool.QueryRow(ctx, `
		SELECT night_pct, weekend_pct, urgent_pct, holiday_pct, updated_at
		FROM surcharge_policy
		WHERE id = 1
	`).Scan(&policy.NightPct, &policy.WeekendPct, &policy.UrgentPct, &policy.HolidayPct, &policy.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SurchargePolicy{}, apperr.NotFound("surcharge policy not initialized")
		}
		return SurchargePolicy{}, apperr.Wrap(apperr.KindInternal, "failed to get surcharge policy", err)
	}
	return policy, nil
}

// UpsertSurchargePolicy stores the single global policy row.
func (r *Repository) UpsertSurchargePolicy(ctx context.Context, policy SurchargePolicy) (SurchargePolicy, error) {
	policy.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO surcharge_policy (id, night_pct, weekend_pct, urgent_pct, holiday_pct, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			night_pct = EXCLUDED.night_pct,
			weekend_pct = EXCLUDED.weekend_pct,
			urgent_pct = EXCLUDED.urgent_pct,
			holiday_pct = EXCLUDED.holiday_pct,
			updated_at = EXCLUDED.updated_at
	`, policy.NightPct, policy.WeekendPct, policy.UrgentPct, policy.HolidayPct, policy.UpdatedAt)
	if err != nil {
		return SurchargePolicy{}, apperr.Wrap(apperr.KindInternal, "failed to upsert surcharge policy", err)
	}
	return policy, nil
}
