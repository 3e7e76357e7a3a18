package pricing

import (
	"testing"
	"time"
)

// tuesdayMorning is a weekday daytime reference clock.
func tuesdayMorning() time.Time {
	return time.Date(2025, time.January, 14, 10, 0, 0, 0, time.UTC)
}

// saturdayNight is a weekend nighttime reference clock.
func saturdayNight() time.Time {
	return time.Date(2025, time.January, 18, 22, 30, 0, 0, time.UTC)
}

func newTestEngine(now func() time.Time) *Engine {
	return NewWithClock(NewStaticCatalog(), now)
}

func TestCalculateEstimate_DaytimeWeekdayOpening(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	est := engine.CalculateEstimate("ouverture-simple", Flags{})

	if est.MinCents != 11520 {
		t.Fatalf("expected min 11520, got %d", est.MinCents)
	}
	if est.MaxCents != 14080 {
		t.Fatalf("expected max 14080, got %d", est.MaxCents)
	}
	if est.Currency != "EUR" {
		t.Fatalf("expected currency EUR, got %s", est.Currency)
	}
	if len(est.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown lines, got %d", len(est.Breakdown))
	}
	if est.Breakdown[0].AmountCents != 8900 {
		t.Fatalf("expected base line 8900, got %d", est.Breakdown[0].AmountCents)
	}
	if est.Breakdown[1].Label != "Déplacement" || est.Breakdown[1].AmountCents != 3900 {
		t.Fatalf("expected displacement line 3900, got %q=>%d", est.Breakdown[1].Label, est.Breakdown[1].AmountCents)
	}
}

func TestCalculateEstimate_NightAndWeekendStack(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	est := engine.CalculateEstimate("ouverture-simple", Flags{
		IsNight:   Bool(true),
		IsWeekend: Bool(true),
	})

	// 12800 * 1.80 = 23040, then a 10% band on either side.
	if est.MinCents != 20736 {
		t.Fatalf("expected min 20736, got %d", est.MinCents)
	}
	if est.MaxCents != 25344 {
		t.Fatalf("expected max 25344, got %d", est.MaxCents)
	}
	if len(est.Breakdown) != 4 {
		t.Fatalf("expected 4 breakdown lines, got %d", len(est.Breakdown))
	}
	if est.Breakdown[1].AmountCents != 4450 {
		t.Fatalf("expected night surcharge 4450, got %d", est.Breakdown[1].AmountCents)
	}
	if est.Breakdown[2].AmountCents != 2670 {
		t.Fatalf("expected weekend surcharge 2670, got %d", est.Breakdown[2].AmountCents)
	}
}

func TestCalculateEstimate_AllSurchargesUncapped(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	est := engine.CalculateEstimate("ouverture-simple", Flags{
		IsNight:   Bool(true),
		IsWeekend: Bool(true),
		IsUrgent:  true,
		IsHoliday: true,
	})

	// 50+30+25+75 = 180% stacked: 12800 * 2.80 = 35840.
	if est.MinCents != 32256 {
		t.Fatalf("expected min 32256, got %d", est.MinCents)
	}
	if est.MaxCents != 39424 {
		t.Fatalf("expected max 39424, got %d", est.MaxCents)
	}
	if len(est.Breakdown) != 6 {
		t.Fatalf("expected 6 breakdown lines, got %d", len(est.Breakdown))
	}
}

func TestCalculateEstimate_SurchargeExcludesDisplacement(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	est := engine.CalculateEstimate("ouverture-simple", Flags{IsNight: Bool(true), IsWeekend: Bool(false)})

	// The night line is 50% of the base only, not of base plus displacement.
	if est.Breakdown[1].Label != "Majoration nuit (20h-8h)" {
		t.Fatalf("expected night label, got %q", est.Breakdown[1].Label)
	}
	if est.Breakdown[1].AmountCents != 4450 {
		t.Fatalf("expected night surcharge 4450, got %d", est.Breakdown[1].AmountCents)
	}
}

func TestCalculateEstimate_QuantityScalesBaseOnly(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	est := engine.CalculateEstimate("double-standard", Flags{Quantity: 3})

	if est.Breakdown[0].AmountCents != 4500 {
		t.Fatalf("expected base 4500 for quantity 3, got %d", est.Breakdown[0].AmountCents)
	}
	// Displacement stays a flat fee regardless of quantity.
	if est.Breakdown[1].AmountCents != 3900 {
		t.Fatalf("expected displacement 3900, got %d", est.Breakdown[1].AmountCents)
	}
	total := int64(8400)
	if est.MinCents != roundCents(float64(total)*0.9) || est.MaxCents != roundCents(float64(total)*1.1) {
		t.Fatalf("expected band around %d, got %d..%d", total, est.MinCents, est.MaxCents)
	}
}

func TestCalculateEstimate_ZeroQuantityDefaultsToOne(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	withZero := engine.CalculateEstimate("ouverture-simple", Flags{Quantity: 0})
	withOne := engine.CalculateEstimate("ouverture-simple", Flags{Quantity: 1})

	if withZero.MinCents != withOne.MinCents || withZero.MaxCents != withOne.MaxCents {
		t.Fatalf("expected quantity 0 to match quantity 1, got %d..%d vs %d..%d",
			withZero.MinCents, withZero.MaxCents, withOne.MinCents, withOne.MaxCents)
	}
}

func TestCalculateEstimate_UnknownCodeYieldsZeroEstimate(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	est := engine.CalculateEstimate("teleportation", Flags{IsUrgent: true})

	if !est.IsZero() {
		t.Fatalf("expected zero estimate, got %d..%d", est.MinCents, est.MaxCents)
	}
	if est.Currency != "EUR" {
		t.Fatalf("expected currency EUR on zero estimate, got %s", est.Currency)
	}
	if len(est.Breakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %d lines", len(est.Breakdown))
	}
}

func TestCalculateEstimate_NightDerivedFromClock(t *testing.T) {
	engine := newTestEngine(saturdayNight)

	est := engine.CalculateEstimate("ouverture-simple", Flags{})

	// Saturday 22:30 triggers both night and weekend without explicit flags.
	if est.MinCents != 20736 || est.MaxCents != 25344 {
		t.Fatalf("expected derived night+weekend band 20736..25344, got %d..%d", est.MinCents, est.MaxCents)
	}
}

func TestCalculateEstimate_ExplicitFlagsOverrideClock(t *testing.T) {
	engine := newTestEngine(saturdayNight)

	est := engine.CalculateEstimate("ouverture-simple", Flags{
		IsNight:   Bool(false),
		IsWeekend: Bool(false),
	})

	if est.MinCents != 11520 || est.MaxCents != 14080 {
		t.Fatalf("expected daytime band 11520..14080, got %d..%d", est.MinCents, est.MaxCents)
	}
}

func TestCalculateEstimate_EarlyMorningCountsAsNight(t *testing.T) {
	sixAM := func() time.Time {
		return time.Date(2025, time.January, 15, 6, 0, 0, 0, time.UTC)
	}
	engine := newTestEngine(sixAM)

	est := engine.CalculateEstimate("ouverture-simple", Flags{})

	// 12800 * 1.50 = 19200.
	if est.MinCents != 17280 || est.MaxCents != 21120 {
		t.Fatalf("expected night band 17280..21120, got %d..%d", est.MinCents, est.MaxCents)
	}
}

func TestCalculateEstimate_BandOrdering(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	codes := []string{
		"ouverture-simple", "ouverture-blindee", "cylindre-standard", "cylindre-securise",
		"cylindre-a2p", "multipoints-3pts", "multipoints-5pts", "securisation",
		"blindage", "coffre-fort", "double-standard", "double-securise", "volet",
	}
	for _, code := range codes {
		est := engine.CalculateEstimate(code, Flags{IsUrgent: true})
		if est.MinCents <= 0 || est.MinCents > est.MaxCents {
			t.Fatalf("%s: expected 0 < min <= max, got %d..%d", code, est.MinCents, est.MaxCents)
		}
	}
}

func TestCalculateETA_DefaultDistance(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	eta := engine.CalculateETA("ouverture-simple", ETAFlags{})

	// Arrival 30-60, travel 15 for the default 5 km, labor 30-60.
	if eta.Min != 75 || eta.Max != 135 {
		t.Fatalf("expected 75..135, got %d..%d", eta.Min, eta.Max)
	}
	if eta.Unit != "minutes" {
		t.Fatalf("expected unit minutes, got %s", eta.Unit)
	}
}

func TestCalculateETA_UrgentTightensArrival(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	normal := engine.CalculateETA("ouverture-simple", ETAFlags{})
	urgent := engine.CalculateETA("ouverture-simple", ETAFlags{IsUrgent: true})

	if urgent.Min != normal.Min-10 || urgent.Max != normal.Max-20 {
		t.Fatalf("expected urgent window 10/20 tighter, got %d..%d vs %d..%d",
			urgent.Min, urgent.Max, normal.Min, normal.Max)
	}
}

func TestCalculateETA_TravelScalesWithDistance(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	eta := engine.CalculateETA("ouverture-simple", ETAFlags{DistanceKm: 10})

	if eta.Min != 90 || eta.Max != 150 {
		t.Fatalf("expected 90..150 at 10 km, got %d..%d", eta.Min, eta.Max)
	}
}

func TestCalculateETA_UnknownCodeUsesFallbackLabor(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	unknown := engine.CalculateETA("teleportation", ETAFlags{})
	known := engine.CalculateETA("ouverture-simple", ETAFlags{})

	// The fallback labor range happens to match ouverture-simple.
	if unknown.Min != known.Min || unknown.Max != known.Max {
		t.Fatalf("expected fallback to match 30-60 labor, got %d..%d", unknown.Min, unknown.Max)
	}
}

func TestCalculateETA_LongJobUsesCatalogDuration(t *testing.T) {
	engine := newTestEngine(tuesdayMorning)

	eta := engine.CalculateETA("blindage", ETAFlags{})

	// Arrival 30-60, travel 15, labor 180-240.
	if eta.Min != 225 || eta.Max != 315 {
		t.Fatalf("expected 225..315, got %d..%d", eta.Min, eta.Max)
	}
}

func TestPriceRangeForSlug_KnownAndUnknown(t *testing.T) {
	catalog := NewStaticCatalog()

	from, to := PriceRangeForSlug(catalog, "ouverture-de-porte")
	if from <= 0 || from > to {
		t.Fatalf("expected positive ordered range, got %d..%d", from, to)
	}

	from, to = PriceRangeForSlug(catalog, "nonexistent-slug")
	if from != 0 || to != 0 {
		t.Fatalf("expected zero range for unknown slug, got %d..%d", from, to)
	}
}
