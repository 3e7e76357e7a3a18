package service

import (
	"context"
	"fmt"
)

// ClassifierInput is the subset of the intake form relevant to diagnosis.
type ClassifierInput struct {
	ProblemType string
	Description string
	IsUrgent    bool
}

// Classification is the diagnostic outcome used for pricing.
type Classification struct {
	ServiceCode string
	LockType    string
	Brand       *string
	Confidence  float64
	RiskFlags   []string
	Notes       string
}

// Classifier turns an intake description into a billable service code.
// Implementations may call out to an inference service; the interface is
// deliberately narrow so the intake flow does not care which.
type Classifier interface {
	Classify(ctx context.Context, input ClassifierInput) (Classification, error)
}

// problemServiceCodes maps customer-facing problem types to catalog codes.
var problemServiceCodes = map[string]string{
	"porte-claquee":       "ouverture-simple",
	"cle-cassee":          "ouverture-simple",
	"cle-perdue":          "cylindre-standard",
	"effraction":          "securisation",
	"serrure-bloquee":     "ouverture-simple",
	"changement-cylindre": "cylindre-standard",
	"serrure-multipoints": "multipoints-3pts",
	"blindage":            "blindage",
}

// fallbackServiceCode covers unrecognized problem types; a door opening is
// the most common intervention and the cheapest safe assumption.
const fallbackServiceCode = "ouverture-simple"

const stubConfidence = 0.85

// TableClassifier is a deterministic classifier backed by the problem-type
// table. It stands in until a real inference backend is wired up.
type TableClassifier struct{}

// NewTableClassifier creates the table-driven classifier.
func NewTableClassifier() *TableClassifier {
	return &TableClassifier{}
}

// Classify resolves the problem type against the static table.
func (c *TableClassifier) Classify(_ context.Context, input ClassifierInput) (Classification, error) {
	code, ok := problemServiceCodes[input.ProblemType]
	if !ok {
		code = fallbackServiceCode
	}

	var riskFlags []string
	if input.IsUrgent {
		riskFlags = []string{"urgent"}
	}

	return Classification{
		ServiceCode: code,
		LockType:    input.ProblemType,
		Confidence:  stubConfidence,
		RiskFlags:   riskFlags,
		Notes:       fmt.Sprintf("Diagnostic automatique pour: %s. Analyse basée sur la description fournie.", input.ProblemType),
	}, nil
}

var _ Classifier = (*TableClassifier)(nil)
