package main

import (
	"testing"

	settingsservice "monjoel_backend/internal/settings/service"

	"github.com/google/uuid"
)

func TestPricebookRowsAssignFreshIDs(t *testing.T) {
	seed := pricebookSeed{Items: []seedItem{
		{Code: "ouverture-simple", Label: "Ouverture de porte claquée", Category: "ouverture",
			BasePriceCents: 8900, DurationMinMinutes: 20, DurationMaxMinutes: 40},
		{Code: "cylindre-standard", Label: "Changement de cylindre standard", Category: "cylindre",
			BasePriceCents: 12900, DurationMinMinutes: 30, DurationMaxMinutes: 60},
	}}

	rows := pricebookRows(seed)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	seen := map[uuid.UUID]bool{}
	for _, row := range rows {
		if row.ID == uuid.Nil {
			t.Fatalf("row %s has a zero-value id", row.Code)
		}
		if seen[row.ID] {
			t.Fatalf("row %s reuses id %s", row.Code, row.ID)
		}
		seen[row.ID] = true

		if !row.IsActive {
			t.Fatalf("row %s should be active", row.Code)
		}
		if row.CreatedAt.IsZero() || row.UpdatedAt.IsZero() {
			t.Fatalf("row %s is missing timestamps", row.Code)
		}
	}
}

func TestSettingRowsAssignFreshIDs(t *testing.T) {
	rows := settingRows()
	if len(rows) != len(settingsservice.DefaultSettings()) {
		t.Fatalf("expected %d rows, got %d", len(settingsservice.DefaultSettings()), len(rows))
	}

	seen := map[uuid.UUID]bool{}
	for _, row := range rows {
		if row.ID == uuid.Nil {
			t.Fatalf("setting %s has a zero-value id", row.Key)
		}
		if seen[row.ID] {
			t.Fatalf("setting %s reuses id %s", row.Key, row.ID)
		}
		seen[row.ID] = true
	}
}
