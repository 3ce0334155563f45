package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidateBillingMonth checks that a month falls in the 1-12 billing range
func ValidateBillingMonth(month int) error {
	if month < MinBillingMonth || month > MaxBillingMonth {
		return NewValidationError(fmt.Sprintf("month must be between %d and %d", MinBillingMonth, MaxBillingMonth))
	}
	return nil
}
