// Package pricing implements the price and ETA estimation engine for
// locksmith interventions. All monetary amounts are integer euro cents;
// all computations are pure and free of I/O.
package pricing

// Currency is the ISO code attached to every estimate.
const Currency = "EUR"

// DurationRange is an on-site labor time window in minutes, travel excluded.
type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsZero reports whether no duration is known for a service.
func (d DurationRange) IsZero() bool {
	return d.Min == 0 && d.Max == 0
}

// CatalogEntry describes one service in the pricebook.
type CatalogEntry struct {
	Code           string
	BasePriceCents int64
	Duration       DurationRange
}

// SurchargePolicy holds the percentage adders applied on top of the base
// price. Percentages are non-negative integers and sum independently;
// there is no cap on the stacked total.
type SurchargePolicy struct {
	NightPct   int
	WeekendPct int
	UrgentPct  int
	HolidayPct int
}

// CatalogProvider is the engine's only dependency: a read-only view of the
// service catalog. Implementations must be safe for concurrent use.
type CatalogProvider interface {
	// Entry resolves a service code. The second return is false for
	// unknown codes.
	Entry(code string) (CatalogEntry, bool)
	// Surcharges returns the percentage policy in effect.
	Surcharges() SurchargePolicy
}

// Flags carries the situational inputs for a price estimate.
// IsNight and IsWeekend are tri-state: nil means "derive from the current
// wall clock", so the same call serves both live quotes and hypothetical
// ones.
type Flags struct {
	IsNight   *bool
	IsWeekend *bool
	IsUrgent  bool
	IsHoliday bool
	// Quantity multiplies the base price; zero or negative is treated as 1.
	Quantity int
}

// ETAFlags carries the situational inputs for an ETA estimate.
type ETAFlags struct {
	IsUrgent bool
	// DistanceKm is the intervention distance. Non-positive values fall
	// back to the 5 km urban default.
	DistanceKm float64
}

// BreakdownItem is one line of an estimate's price decomposition.
type BreakdownItem struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount"`
}

// PriceEstimate is a price range in cents around a computed total.
// Min == Max == 0 signals an unrecognized service code, not a free quote.
type PriceEstimate struct {
	MinCents  int64           `json:"min"`
	MaxCents  int64           `json:"max"`
	Currency  string          `json:"currency"`
	Breakdown []BreakdownItem `json:"breakdown,omitempty"`
}

// IsZero reports whether the estimate is the unknown-service sentinel.
func (p PriceEstimate) IsZero() bool {
	return p.MinCents == 0 && p.MaxCents == 0
}

// ETAEstimate is an arrival-plus-labor time window.
type ETAEstimate struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit"`
}

// Bool is a helper for building tri-state flags.
func Bool(v bool) *bool {
	return &v
}
