package pricing

import "testing"

func TestFormatPriceEstimate(t *testing.T) {
	cases := []struct {
		name string
		est  PriceEstimate
		want string
	}{
		{"range", PriceEstimate{MinCents: 8900, MaxCents: 12900, Currency: Currency}, "89 € - 129 €"},
		{"collapsed", PriceEstimate{MinCents: 8900, MaxCents: 8900, Currency: Currency}, "89 €"},
		{"rounds to euros", PriceEstimate{MinCents: 11520, MaxCents: 14080, Currency: Currency}, "115 € - 141 €"},
		{"collapses after rounding", PriceEstimate{MinCents: 8890, MaxCents: 8910, Currency: Currency}, "89 €"},
		{"zero", PriceEstimate{Currency: Currency}, "0 €"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPriceEstimate(tc.est); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatETA(t *testing.T) {
	cases := []struct {
		name string
		eta  ETAEstimate
		want string
	}{
		{"minutes range", ETAEstimate{Min: 30, Max: 45, Unit: "minutes"}, "30 - 45 min"},
		{"minutes collapsed", ETAEstimate{Min: 40, Max: 40, Unit: "minutes"}, "40 min"},
		{"switches to hours above sixty", ETAEstimate{Min: 75, Max: 135, Unit: "minutes"}, "1h - 3h"},
		{"hours unit honored", ETAEstimate{Min: 60, Max: 120, Unit: "hours"}, "1h - 2h"},
		{"hours collapsed", ETAEstimate{Min: 120, Max: 120, Unit: "hours"}, "2h"},
		{"hours rounds outward", ETAEstimate{Min: 90, Max: 100, Unit: "minutes"}, "1h - 2h"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatETA(tc.eta); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
