package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monjoel_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestNotFoundMsg = "diagnostic request not found"

// Request statuses.
const (
	StatusAnalyzing = "ANALYZING"
	StatusQuoted    = "QUOTED"
)

// Intake channels.
const (
	ChannelWeb    = "WEB"
	ChannelDirect = "DIRECT"
)

// Repository provides database operations for diagnostic requests.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new diagnostic repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Request struct {
	ID           uuid.UUID
	Status       string
	Channel      string
	Description  string
	Zip          string
	City         string
	ContactName  string
	ContactPhone string
	ContactEmail *string
	SourceUTM    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Ticket struct {
	ID           uuid.UUID
	RequestID    uuid.UUID
	LockType     string
	Brand        *string
	Confidence   float64
	PricingJSON  []byte
	EtaJSON      []byte
	RiskFlags    []string
	AINotes      *string
	PhotoFileKey *string
	CreatedAt    time.Time
}

type ListParams struct {
	Status   string
	Page     int
	PageSize int
}

type ListResult struct {
	Items      []Request
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

func (r *Repository) CreateRequest(ctx context.Context, req Request) (Request, error) {
	query := `
		INSERT INTO diagnostic_requests (
			id, status, channel, description, zip, city,
			contact_name, contact_phone, contact_email, source_utm,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.Status,
		req.Channel,
		req.Description,
		req.Zip,
		req.City,
		req.ContactName,
		req.ContactPhone,
		req.ContactEmail,
		req.SourceUTM,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return Request{}, apperr.Wrap(apperr.KindInternal, "failed to create diagnostic request", err)
	}
	return req, nil
}

func (r *Repository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE diagnostic_requests SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update request status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(requestNotFoundMsg)
	}
	return nil
}

func (r *Repository) GetRequest(ctx context.Context, id uuid.UUID) (Request, error) {
	query := `
		SELECT id, status, channel, description, zip, city,
		       contact_name, contact_phone, contact_email, source_utm,
		       created_at, updated_at
		FROM diagnostic_requests
		WHERE id = $1
	`

	var req Request
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Status, &req.Channel, &req.Description, &req.Zip, &req.City,
		&req.ContactName, &req.ContactPhone, &req.ContactEmail, &req.SourceUTM,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Request{}, apperr.NotFound(requestNotFoundMsg)
		}
		return Request{}, apperr.Wrap(apperr.KindInternal, "failed to get diagnostic request", err)
	}
	return req, nil
}

func (r *Repository) ListRequests(ctx context.Context, params ListParams) (ListResult, error) {
	where := ""
	args := []interface{}{}
	if params.Status != "" {
		where = "WHERE status = $1"
		args = append(args, params.Status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM diagnostic_requests %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to count diagnostic requests", err)
	}

	offset := (params.Page - 1) * params.PageSize
	listQuery := fmt.Sprintf(`
		SELECT id, status, channel, description, zip, city,
		       contact_name, contact_phone, contact_email, source_utm,
		       created_at, updated_at
		FROM diagnostic_requests
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to list diagnostic requests", err)
	}
	defer rows.Close()

	items := []Request{}
	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID, &req.Status, &req.Channel, &req.Description, &req.Zip, &req.City,
			&req.ContactName, &req.ContactPhone, &req.ContactEmail, &req.SourceUTM,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to scan diagnostic request", err)
		}
		items = append(items, req)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, apperr.Wrap(apperr.KindInternal, "failed to iterate diagnostic requests", err)
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

func (r *Repository) CreateTicket(ctx context.Context, ticket Ticket) (Ticket, error) {
	query := `
		INSERT INTO diagnostic_tickets (
			id, request_id, lock_type, brand, confidence,
			pricing_json, eta_json, risk_flags, ai_notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.RequestID,
		ticket.LockType,
		ticket.Brand,
		ticket.Confidence,
		ticket.PricingJSON,
		ticket.EtaJSON,
		ticket.RiskFlags,
		ticket.AINotes,
		ticket.CreatedAt,
	)
	if err != nil {
		return Ticket{}, apperr.Wrap(apperr.KindInternal, "failed to create diagnostic ticket", err)
	}
	return ticket, nil
}

func (r *Repository) GetTicketByRequest(ctx context.Context, requestID uuid.UUID) (Ticket, error) {
	query := `
		SELECT id, request_id, lock_type, brand, confidence,
		       pricing_json, eta_json, risk_flags, ai_notes, photo_file_key, created_at
		FROM diagnostic_tickets
		WHERE request_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var ticket Ticket
	err := r.pool.QueryRow(ctx, query, requestID).Scan(
		&ticket.ID, &ticket.RequestID, &ticket.LockType, &ticket.Brand, &ticket.Confidence,
		&ticket.PricingJSON, &ticket.EtaJSON, &ticket.RiskFlags, &ticket.AINotes,
		&ticket.PhotoFileKey, &ticket.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Ticket{}, apperr.NotFound("diagnostic ticket not found")
		}
		return Ticket{}, apperr.Wrap(apperr.KindInternal, "failed to get diagnostic ticket", err)
	}
	return ticket, nil
}

func (r *Repository) SetTicketPhoto(ctx context.Context, requestID uuid.UUID, fileKey string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE diagnostic_tickets SET photo_file_key = $2 WHERE request_id = $1`,
		requestID, fileKey,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to set ticket photo", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("diagnostic ticket not found")
	}
	return nil
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
