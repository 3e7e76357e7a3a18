package transport

import (
	"time"

	"github.com/google/uuid"
)

// ApplyRequest is the public artisan application payload.
type ApplyRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=2,max=200"`
	SIRET       string `json:"siret" validate:"required,max=20"`
	ContactName string `json:"contactName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=50"`
	Zones       string `json:"zones" validate:"required,min=2,max=500"`
	Message     string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// ApplyResponse acknowledges a stored application.
type ApplyResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// ApplicationResponse is the admin view of an artisan application.
type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	SIRET       string    `json:"siret"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Zones       string    `json:"zones"`
	Message     *string   `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListApplicationsRequest is the admin list query.
type ListApplicationsRequest struct {
	Status   string `form:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ListApplicationsResponse is the paginated admin list payload.
type ListApplicationsResponse struct {
	Items      []ApplicationResponse `json:"items"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalPages int                   `json:"totalPages"`
}

// UpdateStatusRequest is the admin decision payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}
