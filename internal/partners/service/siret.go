package service

import (
	"strings"

	"monjoel_backend/platform/apperr"
)

// NormalizeSIRET strips whitespace from a SIRET number.
func NormalizeSIRET(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}

// ValidateSIRET checks that a SIRET is 14 digits and passes the Luhn check
// used by INSEE for establishment numbers.
func ValidateSIRET(siret string) error {
	if len(siret) != 14 {
		return apperr.Validation("SIRET invalide (14 chiffres)")
	}

	sum := 0
	for i, r := range siret {
		if r < '0' || r > '9' {
			return apperr.Validation("SIRET invalide (14 chiffres)")
		}
		digit := int(r - '0')
		// Even positions (0-based) are doubled for a 14-digit number.
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	if sum%10 != 0 {
		return apperr.Validation("SIRET invalide (somme de contrôle)")
	}
	return nil
}
