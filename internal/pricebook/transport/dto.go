package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateItemRequest is the admin payload for a new pricebook entry.
type CreateItemRequest struct {
	Code               string `json:"code" validate:"required,max=100"`
	Label              string `json:"label" validate:"required,max=200"`
	Category           string `json:"category" validate:"required,max=100"`
	BasePriceCents     int64  `json:"basePriceCents" validate:"required,min=1"`
	DurationMinMinutes int    `json:"durationMinMinutes" validate:"omitempty,min=0"`
	DurationMaxMinutes int    `json:"durationMaxMinutes" validate:"omitempty,min=0,gtefield=DurationMinMinutes"`
	IsActive           *bool  `json:"isActive,omitempty"`
}

// UpdateItemRequest is the admin payload for a partial pricebook update.
type UpdateItemRequest struct {
	Label              *string `json:"label,omitempty" validate:"omitempty,max=200"`
	Category           *string `json:"category,omitempty" validate:"omitempty,max=100"`
	BasePriceCents     *int64  `json:"basePriceCents,omitempty" validate:"omitempty,min=1"`
	DurationMinMinutes *int    `json:"durationMinMinutes,omitempty" validate:"omitempty,min=0"`
	DurationMaxMinutes *int    `json:"durationMaxMinutes,omitempty" validate:"omitempty,min=0"`
	IsActive           *bool   `json:"isActive,omitempty"`
}

// ItemResponse is the admin view of a pricebook entry.
type ItemResponse struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"code"`
	Label              string    `json:"label"`
	Category           string    `json:"category"`
	BasePriceCents     int64     `json:"basePriceCents"`
	DurationMinMinutes int       `json:"durationMinMinutes"`
	DurationMaxMinutes int       `json:"durationMaxMinutes"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// SurchargePolicyRequest is the admin payload for the global policy.
type SurchargePolicyRequest struct {
	NightPct   int `json:"nightPct" validate:"min=0,max=500"`
	WeekendPct int `json:"weekendPct" validate:"min=0,max=500"`
	UrgentPct  int `json:"urgentPct" validate:"min=0,max=500"`
	HolidayPct int `json:"holidayPct" validate:"min=0,max=500"`
}

// SurchargePolicyResponse is the stored global policy.
type SurchargePolicyResponse struct {
	NightPct   int       `json:"nightPct"`
	WeekendPct int       `json:"weekendPct"`
	UrgentPct  int       `json:"urgentPct"`
	HolidayPct int       `json:"holidayPct"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PriceListItem is one line of the public price page.
type PriceListItem struct {
	Code       string `json:"code"`
	Label      string `json:"label"`
	PriceLabel string `json:"priceLabel"`
}

// PriceListCategory groups public price lines.
type PriceListCategory struct {
	Name  string          `json:"name"`
	Items []PriceListItem `json:"items"`
}

// PriceListResponse is the public price page payload.
type PriceListResponse struct {
	Categories []PriceListCategory `json:"categories"`
}

// ServicePriceRangeResponse is the public per-slug price range.
type ServicePriceRangeResponse struct {
	Slug       string `json:"slug"`
	FromCents  int64  `json:"fromCents"`
	ToCents    int64  `json:"toCents"`
	PriceLabel string `json:"priceLabel"`
}
