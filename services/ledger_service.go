package services

import (
	"time"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
)

// LedgerService implements the payment state machine. Status is never set
// freely: every transition validates its preconditions first, then recomputes
// status from (amount, paidAmount), so a payment can never hold an
// inconsistent combination.
type LedgerService struct{}

// NewLedgerService creates a new ledger service
func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// RecordPayment applies an installment to a pending or partially paid
// payment. The amount must be positive and cannot exceed the remaining
// balance. Each successful call replaces ReceiptNumber with the new
// installment's reference, and the paid timestamp is stamped once the
// payment is fully settled.
func (s *LedgerService) RecordPayment(payment *models.Payment, amount float64) error {
	switch payment.Status {
	case models.PaymentPaid:
		return utils.NewInvalidStateError("payment is already fully paid")
	case models.PaymentCancelled:
		return utils.NewInvalidStateError("payment is cancelled")
	}

	amount = utils.Round(amount)
	if amount <= 0 {
		return utils.NewInvalidAmountError("amount must be greater than 0")
	}
	remaining := utils.Round(payment.Remaining())
	if amount > remaining {
		return utils.NewInvalidAmountError("amount exceeds remaining balance")
	}

	payment.PaidAmount = utils.Round(payment.PaidAmount + amount)
	payment.Status = statusFor(payment)
	payment.ReceiptNumber = utils.GenerateReceiptNumber()
	if payment.Status == models.PaymentPaid {
		now := time.Now()
		payment.PaidAt = &now
	}
	return nil
}

// Cancel moves a pending or partially paid payment to its terminal cancelled
// state. The paid amount stays frozen at whatever was collected so far.
func (s *LedgerService) Cancel(payment *models.Payment) error {
	switch payment.Status {
	case models.PaymentPaid:
		return utils.NewInvalidStateError("a fully paid payment cannot be cancelled")
	case models.PaymentCancelled:
		return utils.NewInvalidStateError("payment is already cancelled")
	}

	payment.Status = models.PaymentCancelled
	return nil
}

// Summarize aggregates a set of payment rows. Pure, no side effects.
func (s *LedgerService) Summarize(payments []models.Payment) models.PaymentSummary {
	var summary models.PaymentSummary
	for _, payment := range payments {
		summary.TotalAmount += payment.Amount
		summary.TotalPaid += payment.PaidAmount
		if payment.Status == models.PaymentPending || payment.Status == models.PaymentPartial {
			summary.PendingCount++
		}
	}
	summary.TotalAmount = utils.Round(summary.TotalAmount)
	summary.TotalPaid = utils.Round(summary.TotalPaid)
	return summary
}

// statusFor derives the lifecycle state from the amounts
func statusFor(payment *models.Payment) models.PaymentStatus {
	switch {
	case payment.PaidAmount <= 0:
		return models.PaymentPending
	case payment.PaidAmount < payment.Amount:
		return models.PaymentPartial
	default:
		return models.PaymentPaid
	}
}
