package service

import "testing"

func TestValidateSIRET_Valid(t *testing.T) {
	// Published INSEE example establishment number.
	if err := ValidateSIRET("73282932000074"); err != nil {
		t.Fatalf("expected valid SIRET, got %v", err)
	}
}

func TestValidateSIRET_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		siret string
	}{
		{"too short", "7328293200007"},
		{"too long", "732829320000741"},
		{"non digit", "7328293200007a"},
		{"bad checksum", "73282932000075"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateSIRET(tc.siret); err == nil {
				t.Fatalf("expected error for %q", tc.siret)
			}
		})
	}
}

func TestNormalizeSIRET_StripsWhitespace(t *testing.T) {
	if got := NormalizeSIRET("732 829 320 00074"); got != "73282932000074" {
		t.Fatalf("expected stripped SIRET, got %q", got)
	}
}
