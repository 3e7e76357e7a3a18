package pricing

import (
	"math"
	"time"
)

// Breakdown labels shown to customers.
const (
	labelBase         = "Prestation de base"
	labelNight        = "Majoration nuit (20h-8h)"
	labelWeekend      = "Majoration week-end"
	labelUrgent       = "Majoration urgence"
	labelHoliday      = "Majoration jour férié"
	labelDisplacement = "Déplacement"
)

const (
	// defaultDistanceKm is the urban travel distance assumed when the
	// caller does not supply one.
	defaultDistanceKm = 5.0
	// travelMinutesPerKm models an average 20 km/h door-to-door speed.
	travelMinutesPerKm = 3.0
)

// defaultLabor is the ETA fallback for codes with no known duration.
var defaultLabor = DurationRange{Min: 30, Max: 60}

var (
	arrivalUrgent = DurationRange{Min: 20, Max: 40}
	arrivalNormal = DurationRange{Min: 30, Max: 60}
)

// Engine computes price and ETA estimates against an injected catalog.
// It is stateless; a single Engine may be shared by any number of
// concurrent request handlers.
type Engine struct {
	catalog CatalogProvider
	now     func() time.Time
}

// New creates an estimation engine backed by the given catalog.
func New(catalog CatalogProvider) *Engine {
	return &Engine{catalog: catalog, now: time.Now}
}

// NewWithClock creates an engine with a fixed clock, for tests and for
// quoting under hypothetical conditions.
func NewWithClock(catalog CatalogProvider, now func() time.Time) *Engine {
	return &Engine{catalog: catalog, now: now}
}

// roundCents rounds a float amount to the nearest cent (integer).
func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

// isNightHour reports whether the hour falls in the 20h-8h night window.
func isNightHour(hour int) bool {
	return hour >= 20 || hour < 8
}

// isWeekendDay reports whether the weekday is Saturday or Sunday.
func isWeekendDay(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

// CalculateEstimate computes a price range for a service under the given
// situational flags.
//
// Unknown service codes yield the zero estimate {0, 0, EUR} with no
// breakdown; callers must treat it as "no valid estimate", never as a free
// intervention. The function never returns an error and performs no I/O.
func (e *Engine) CalculateEstimate(serviceCode string, flags Flags) PriceEstimate {
	entry, ok := e.catalog.Entry(serviceCode)
	if !ok || entry.BasePriceCents <= 0 {
		return PriceEstimate{Currency: Currency}
	}

	quantity := flags.Quantity
	if quantity < 1 {
		quantity = 1
	}

	now := e.now()
	night := flags.IsNight != nil && *flags.IsNight
	if flags.IsNight == nil {
		night = isNightHour(now.Hour())
	}
	weekend := flags.IsWeekend != nil && *flags.IsWeekend
	if flags.IsWeekend == nil {
		weekend = isWeekendDay(now.Weekday())
	}

	baseTotal := entry.BasePriceCents * int64(quantity)
	breakdown := []BreakdownItem{{Label: labelBase, AmountCents: baseTotal}}

	policy := e.catalog.Surcharges()
	totalSurchargePct := 0
	addSurcharge := func(label string, pct int) {
		totalSurchargePct += pct
		breakdown = append(breakdown, BreakdownItem{
			Label:       label,
			AmountCents: roundCents(float64(baseTotal) * float64(pct) / 100.0),
		})
	}

	// Surcharges stack without a cap; the pricing page's "max 75%" claim is
	// marketing copy, not implemented policy.
	if night {
		addSurcharge(labelNight, policy.NightPct)
	}
	if weekend {
		addSurcharge(labelWeekend, policy.WeekendPct)
	}
	if flags.IsUrgent {
		addSurcharge(labelUrgent, policy.UrgentPct)
	}
	if flags.IsHoliday {
		addSurcharge(labelHoliday, policy.HolidayPct)
	}

	var displacement int64
	if fee, ok := e.catalog.Entry(DisplacementCode); ok {
		displacement = fee.BasePriceCents
	}
	breakdown = append(breakdown, BreakdownItem{Label: labelDisplacement, AmountCents: displacement})

	total := roundCents(float64(baseTotal+displacement) * (1.0 + float64(totalSurchargePct)/100.0))

	return PriceEstimate{
		MinCents:  roundCents(float64(total) * 0.9),
		MaxCents:  roundCents(float64(total) * 1.1),
		Currency:  Currency,
		Breakdown: breakdown,
	}
}

// CalculateETA computes an arrival-plus-labor window in minutes.
//
// Unknown service codes fall back to a generic 30-60 minute labor range.
// The result grows with distance and shrinks with urgency.
func (e *Engine) CalculateETA(serviceCode string, flags ETAFlags) ETAEstimate {
	labor := defaultLabor
	if entry, ok := e.catalog.Entry(serviceCode); ok && !entry.Duration.IsZero() {
		labor = entry.Duration
	}

	distance := flags.DistanceKm
	if distance <= 0 {
		distance = defaultDistanceKm
	}
	travel := int(math.Round(distance * travelMinutesPerKm))

	arrival := arrivalNormal
	if flags.IsUrgent {
		arrival = arrivalUrgent
	}

	return ETAEstimate{
		Min:  arrival.Min + travel + labor.Min,
		Max:  arrival.Max + travel + labor.Max,
		Unit: "minutes",
	}
}
