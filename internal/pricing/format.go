package pricing

import "fmt"

// centsToEuros rounds a cent amount to whole euros, half away from zero.
func centsToEuros(cents int64) int64 {
	return (cents + 50) / 100
}

// FormatPriceEstimate renders a price range for display, e.g.
// "89 € - 129 €". A degenerate range collapses to a single amount.
func FormatPriceEstimate(est PriceEstimate) string {
	minEuros := centsToEuros(est.MinCents)
	maxEuros := centsToEuros(est.MaxCents)
	if minEuros == maxEuros {
		return fmt.Sprintf("%d €", minEuros)
	}
	return fmt.Sprintf("%d € - %d €", minEuros, maxEuros)
}

// FormatETA renders an ETA for display. Windows above an hour switch to
// hour granularity with an outward-rounded range, e.g. "1h - 2h".
func FormatETA(eta ETAEstimate) string {
	if eta.Unit == "hours" || eta.Max > 60 {
		minHours := eta.Min / 60
		maxHours := (eta.Max + 59) / 60
		if minHours == maxHours {
			return fmt.Sprintf("%dh", minHours)
		}
		return fmt.Sprintf("%dh - %dh", minHours, maxHours)
	}
	if eta.Min == eta.Max {
		return fmt.Sprintf("%d min", eta.Min)
	}
	return fmt.Sprintf("%d - %d min", eta.Min, eta.Max)
}
