package models

import (
	"time"
)

// PaymentStatus is the lifecycle state of a membership fee payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPartial   PaymentStatus = "PARTIAL"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// PaymentType classifies which fee a payment row bills for
type PaymentType string

const (
	PaymentSocietaryOnly  PaymentType = "SOCIETARY_ONLY"
	PaymentPrincipalSport PaymentType = "PRINCIPAL_SPORT"
	PaymentSecondarySport PaymentType = "SECONDARY_SPORT"
)

// Payment represents one monthly fee owed by a member. ReceiptNumber holds
// the reference of the latest recorded installment only; earlier references
// live with the external receipt archive.
type Payment struct {
	ID            int           `json:"id" db:"id"`
	MemberID      int           `json:"member_id" db:"member_id"`
	Month         int           `json:"month" db:"month"`
	Year          int           `json:"year" db:"year"`
	Type          PaymentType   `json:"type" db:"type"`
	Description   string        `json:"description" db:"description"`
	Amount        float64       `json:"amount" db:"amount"`
	PaidAmount    float64       `json:"paid_amount" db:"paid_amount"`
	Status        PaymentStatus `json:"status" db:"status"`
	ReceiptNumber string        `json:"receipt_number,omitempty" db:"receipt_number"`
	PaidAt        *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// Remaining returns the unpaid balance of the payment
func (p *Payment) Remaining() float64 {
	return p.Amount - p.PaidAmount
}

// PaymentSummary aggregates a member's payment rows
type PaymentSummary struct {
	TotalAmount  float64 `json:"totalAmount"`
	TotalPaid    float64 `json:"totalPaid"`
	PendingCount int     `json:"pendingCount"`
}

// RecordPaymentRequest represents the request body for recording an installment
type RecordPaymentRequest struct {
	PaymentID int     `json:"paymentId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// CancelPaymentRequest request model
type CancelPaymentRequest struct {
	PaymentID int `json:"paymentId" binding:"required"`
}

// MemberPaymentsRequest request model
type MemberPaymentsRequest struct {
	MemberID int `json:"memberId" binding:"required"`
}

// GenerateDuesRequest represents the request body for monthly dues generation
type GenerateDuesRequest struct {
	MemberID int `json:"memberId" binding:"required"`
	Month    int `json:"month" binding:"required"`
	Year     int `json:"year" binding:"required"`
}
