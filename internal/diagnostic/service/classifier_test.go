package service

import (
	"context"
	"testing"
)

func TestTableClassifier_KnownProblemTypes(t *testing.T) {
	cases := []struct {
		problemType string
		wantCode    string
	}{
		{"porte-claquee", "ouverture-simple"},
		{"cle-cassee", "ouverture-simple"},
		{"cle-perdue", "cylindre-standard"},
		{"effraction", "securisation"},
		{"serrure-bloquee", "ouverture-simple"},
		{"changement-cylindre", "cylindre-standard"},
		{"serrure-multipoints", "multipoints-3pts"},
		{"blindage", "blindage"},
	}

	classifier := NewTableClassifier()
	for _, tc := range cases {
		result, err := classifier.Classify(context.Background(), ClassifierInput{ProblemType: tc.problemType})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.problemType, err)
		}
		if result.ServiceCode != tc.wantCode {
			t.Fatalf("%s: expected code %s, got %s", tc.problemType, tc.wantCode, result.ServiceCode)
		}
		if result.LockType != tc.problemType {
			t.Fatalf("%s: expected lock type echoed, got %s", tc.problemType, result.LockType)
		}
		if result.Confidence != 0.85 {
			t.Fatalf("%s: expected confidence 0.85, got %v", tc.problemType, result.Confidence)
		}
	}
}

func TestTableClassifier_UnknownProblemTypeDefaults(t *testing.T) {
	classifier := NewTableClassifier()

	result, err := classifier.Classify(context.Background(), ClassifierInput{ProblemType: "probleme-mysterieux"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ServiceCode != "ouverture-simple" {
		t.Fatalf("expected default code ouverture-simple, got %s", result.ServiceCode)
	}
	if len(result.RiskFlags) != 0 {
		t.Fatalf("expected no risk flags, got %v", result.RiskFlags)
	}
}

func TestTableClassifier_UrgentSetsRiskFlag(t *testing.T) {
	classifier := NewTableClassifier()

	result, err := classifier.Classify(context.Background(), ClassifierInput{ProblemType: "porte-claquee", IsUrgent: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.RiskFlags) != 1 || result.RiskFlags[0] != "urgent" {
		t.Fatalf("expected risk flags [urgent], got %v", result.RiskFlags)
	}
}
