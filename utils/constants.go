package utils

const (
	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrFailedToStore    = "Failed to store data"
	ErrFailedToRetrieve = "Failed to retrieve data"

	// Billing period bounds
	MinBillingMonth = 1
	MaxBillingMonth = 12

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
