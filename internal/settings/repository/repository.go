package repository

import (
	"context"
	"time"

	"monjoel_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides database operations for site settings.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Setting struct {
	ID          uuid.UUID
	Key         string
	Value       string
	Label       string
	Description *string
	Category    string
	Type        string
	UpdatedAt   time.Time
}

func (r *Repository) ListAll(ctx context.Context) ([]Setting, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, key, value, label, description, category, type, updated_at
		FROM site_settings
		ORDER BY category, key
	`)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list settings", err)
	}
	defer rows.Close()

	settings := []Setting{}
	for rows.Next() {
		var setting Setting
		if err := rows.Scan(
			&setting.ID, &setting.Key, &setting.Value, &setting.Label,
			&setting.Description, &setting.Category, &setting.Type, &setting.UpdatedAt,
		); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan setting", err)
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to iterate settings", err)
	}
	return settings, nil
}

func (r *Repository) ListByCategories(ctx context.Context, categories []string) ([]Setting, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, key, value, label, description, category, type, updated_at
		FROM site_settings
		WHERE category = ANY($1)
		ORDER BY category, key
	`, categories)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list settings", err)
	}
	defer rows.Close()

	settings := []Setting{}
	for rows.Next() {
		var setting Setting
		if err := rows.Scan(
			&setting.ID, &setting.Key, &setting.Value, &setting.Label,
			&setting.Description, &setting.Category, &setting.Type, &setting.UpdatedAt,
		); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan setting", err)
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to iterate settings", err)
	}
	return settings, nil
}

// UpdateValue sets the value of an existing key.
func (r *Repository) UpdateValue(ctx context.Context, key, value string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE site_settings SET value = $2, updated_at = $3 WHERE key = $1`,
		key, value, time.Now(),
	)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update setting", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("unknown setting key: " + key)
	}
	return nil
}

// InsertMissing stores a setting only when its key does not exist yet.
func (r *Repository) InsertMissing(ctx context.Context, setting Setting) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO site_settings (id, key, value, label, description, category, type, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (key) DO NOTHING
	`,
		setting.ID, setting.Key, setting.Value, setting.Label,
		setting.Description, setting.Category, setting.Type, time.Now(),
	)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to insert setting", err)
	}
	return nil
}
