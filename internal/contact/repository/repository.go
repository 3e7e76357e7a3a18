package repository

import (
	"context"
	"time"

	"monjoel_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides database operations for contact submissions.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Submission struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       *string
	Subject     string
	Message     string
	ConsentRGPD bool
	SourceUTM   *string
	CreatedAt   time.Time
}

type ListParams struct {
	Page     int
	PageSize int
}

type ListResult struct {
	Items      []Submission
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

func (r *Repository) Create(ctx context.Context, submission Submission) (Submission, error) {
	query := `
		INSERT INTO contact_submissions (
			id, name, email, phone, subject, message,
			consent_rgpd, source_utm, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Subject,
		submission.Message,
		submission.ConsentRGPD,
		submission.SourceUTM,
		submission.CreatedAt,
	)
	if err != nil {
		return Submission{}, apperr.Wrap(apperr.KindInternal, "failed to create contact submission", err)
	}
	return submission, nil
}

func (r *Repository) List(ctx context.Context, params ListParams) (ListResult, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&total); err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to count contact submissions", err)
	}

	offset := (params.Page - 1) * params.PageSize
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, phone, subject, message,
		       consent_rgpd, source_utm, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, params.PageSize, offset)
	if err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to list contact submissions", err)
	}
	defer rows.Close()

	items := []Submission{}
	for rows.Next() {
		var submission Submission
		if err := rows.Scan(
			&submission.ID, &submission.Name, &submission.Email, &submission.Phone,
			&submission.Subject, &submission.Message, &submission.ConsentRGPD,
			&submission.SourceUTM, &submission.CreatedAt,
		); err != nil {
			return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to scan contact submission", err)
		}
		items = append(items, submission)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to iterate contact submissions", err)
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
