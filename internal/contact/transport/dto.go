package transport

import (
	"time"

	"github.com/google/uuid"
)

// SubmitContactRequest is the public contact form payload.
type SubmitContactRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Message     string `json:"message" validate:"required,min=10,max=5000"`
	ConsentRGPD bool   `json:"consentRgpd" validate:"required,eq=true"`
}

// SubmitContactResponse acknowledges a stored submission.
type SubmitContactResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// SubmissionResponse is the admin view of a contact submission.
type SubmissionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	ConsentRGPD bool      `json:"consentRgpd"`
	SourceUTM   *string   `json:"sourceUtm,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListSubmissionsRequest is the admin list query.
type ListSubmissionsRequest struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ListSubmissionsResponse is the paginated admin list payload.
type ListSubmissionsResponse struct {
	Items      []SubmissionResponse `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalPages int                  `json:"totalPages"`
}
