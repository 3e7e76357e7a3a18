package transport

import (
	"time"

	"monjoel_backend/internal/pricing"

	"github.com/google/uuid"
)

// DiagnoseRequest is the public intake form payload.
type DiagnoseRequest struct {
	Zip          string `json:"zip" validate:"required,frzip"`
	City         string `json:"city" validate:"required,max=100"`
	ProblemType  string `json:"problemType" validate:"required,max=100"`
	Description  string `json:"description" validate:"required,min=10,max=2000"`
	ContactName  string `json:"contactName" validate:"required,min=2,max=100"`
	ContactPhone string `json:"contactPhone" validate:"required,max=50"`
	ContactEmail string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Urgency      string `json:"urgency,omitempty" validate:"omitempty,oneof=normal urgent very_urgent"`
}

// AnalysisResponse is the diagnostic outcome returned to the customer.
type AnalysisResponse struct {
	LockType   string                `json:"lockType"`
	Brand      *string               `json:"brand"`
	Confidence float64               `json:"confidence"`
	Pricing    pricing.PriceEstimate `json:"pricing"`
	Eta        pricing.ETAEstimate   `json:"eta"`
	RiskFlags  []string              `json:"riskFlags"`
	Notes      *string               `json:"notes"`
}

// DiagnoseResponse wraps the analysis with the persisted request ID.
type DiagnoseResponse struct {
	RequestID uuid.UUID        `json:"requestId"`
	Analysis  AnalysisResponse `json:"analysis"`
	Message   string           `json:"message"`
}

// PresignPhotoRequest asks for a presigned upload slot for a request photo.
type PresignPhotoRequest struct {
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required,max=100"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,min=1"`
}

// PresignPhotoResponse carries the upload URL and the stored file key.
type PresignPhotoResponse struct {
	URL       string    `json:"url"`
	FileKey   string    `json:"fileKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RequestSummary is the admin list view of an intake request.
type RequestSummary struct {
	ID           uuid.UUID `json:"id"`
	Status       string    `json:"status"`
	Channel      string    `json:"channel"`
	Zip          string    `json:"zip"`
	City         string    `json:"city"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RequestDetail is the admin detail view including the analysis ticket. The
// photo URL is a short-lived presigned link to the customer's photo, when one
// was uploaded.
type RequestDetail struct {
	RequestSummary
	Description  string            `json:"description"`
	ContactEmail *string           `json:"contactEmail"`
	Ticket       *AnalysisResponse `json:"ticket,omitempty"`
	PhotoURL     *string           `json:"photoUrl,omitempty"`
}

// ListRequestsRequest is the admin list query.
type ListRequestsRequest struct {
	Status   string `form:"status" validate:"omitempty,oneof=ANALYZING QUOTED"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ListRequestsResponse is the paginated admin list payload.
type ListRequestsResponse struct {
	Items      []RequestSummary `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}
