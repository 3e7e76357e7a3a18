// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var frenchZipRegex = regexp.MustCompile(`^[0-9]{5}$`)

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with the French postal code rule
// registered. SIRET checks live in the partners service, as they need the
// Luhn algorithm rather than a tag.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("frzip", validateFrenchZip)
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

func validateFrenchZip(fl validator.FieldLevel) bool {
	return frenchZipRegex.MatchString(fl.Field().String())
}
