package utils

import (
	"github.com/google/uuid"
)

// GenerateReceiptNumber generates a unique reference for a recorded installment
func GenerateReceiptNumber() string {
	return uuid.NewString()
}
