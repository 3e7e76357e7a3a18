package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monjoel_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationNotFoundMsg = "artisan application not found"

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// Application statuses.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Repository provides database operations for artisan applications.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new partners repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Application struct {
	ID          uuid.UUID
	CompanyName string
	SIRET       string
	ContactName string
	Email       string
	Phone       string
	Zones       string
	Message     *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListParams struct {
	Status   string
	Page     int
	PageSize int
}

type ListResult struct {
	Items      []Application
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

func (r *Repository) Create(ctx context.Context, application Application) (Application, error) {
	query := `
		INSERT INTO artisan_applications (
			id, company_name, siret, contact_name, email, phone,
			zones, message, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		application.ID,
		application.CompanyName,
		application.SIRET,
		application.ContactName,
		application.Email,
		application.Phone,
		application.Zones,
		application.Message,
		application.Status,
		application.CreatedAt,
		application.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Application{}, apperr.Conflict("Une candidature existe déjà avec ce numéro SIRET.")
		}
		return Application{}, apperr.Wrap(apperr.KindInternal, "failed to create artisan application", err)
	}
	return application, nil
}

func (r *Repository) ExistsBySIRET(ctx context.Context, siret string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM artisan_applications WHERE siret = $1)`, siret,
	).Scan(&exists)
	if err != nil {
		return false, apperr.Wrap(apperr.KindInternal, "failed to check SIRET", err)
	}
	return exists, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Application, error) {
	query := `
		SELECT id, company_name, siret, contact_name, email, phone,
		       zones, message, status, created_at, updated_at
		FROM artisan_applications
		WHERE id = $1
	`

	var application Application
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&application.ID, &application.CompanyName, &application.SIRET,
		&application.ContactName, &application.Email, &application.Phone,
		&application.Zones, &application.Message, &application.Status,
		&application.CreatedAt, &application.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, apperr.NotFound(applicationNotFoundMsg)
		}
		return Application{}, apperr.Wrap(apperr.KindInternal, "failed to get artisan application", err)
	}
	return application, nil
}

func (r *Repository) List(ctx context.Context, params ListParams) (ListResult, error) {
	where := ""
	args := []interface{}{}
	if params.Status != "" {
		where = "WHERE status = $1"
		args = append(args, params.Status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM artisan_applications %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to count artisan applications", err)
	}

	offset := (params.Page - 1) * params.PageSize
	listQuery := fmt.Sprintf(`
		SELECT id, company_name, siret, contact_name, email, phone,
		       zones, message, status, created_at, updated_at
		FROM artisan_applications
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to list artisan applications", err)
	}
	defer rows.Close()

	items := []Application{}
	for rows.Next() {
		var application Application
		if err := rows.Scan(
			&application.ID, &application.CompanyName, &application.SIRET,
			&application.ContactName, &application.Email, &application.Phone,
			&application.Zones, &application.Message, &application.Status,
			&application.CreatedAt, &application.UpdatedAt,
		); err != nil {
			return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to scan artisan application", err)
		}
		items = append(items, application)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to iterate artisan applications", err)
	}

	totalPages := (total + params.PageSize - 1) / params.PageSize
	return ListResult{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE artisan_applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return Application{}, apperr.Wrap(apperr.KindInternal, "failed to update application status", err)
	}
	if tag.RowsAffected() == 0 {
		return Application{}, apperr.NotFound(applicationNotFoundMsg)
	}
	return r.GetByID(ctx, id)
}

// RecordEvent appends an audit event row.
func (r *Repository) RecordEvent(ctx context.Context, eventType string, payload []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO domain_events (id, type, payload, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New(), eventType, payload, time.Now(),
	)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to record event", err)
	}
	return nil
}
