package services

import (
	"testing"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
	"github.com/stretchr/testify/assert"
)

func pendingPayment(amount float64) *models.Payment {
	return &models.Payment{
		ID:          1,
		MemberID:    10,
		Month:       3,
		Year:        2026,
		Type:        models.PaymentPrincipalSport,
		Description: "Basketball - Senior 03/2026",
		Amount:      amount,
		PaidAmount:  0,
		Status:      models.PaymentPending,
	}
}

func TestLedgerService_RecordPayment_FullLifecycle(t *testing.T) {
	service := NewLedgerService()
	payment := pendingPayment(100)

	// First installment: 100 owed, 80 paid -> PARTIAL
	err := service.RecordPayment(payment, 80)
	assert.NoError(t, err)
	assert.Equal(t, float64(80), payment.PaidAmount)
	assert.Equal(t, models.PaymentPartial, payment.Status)
	assert.NotEmpty(t, payment.ReceiptNumber)
	assert.Nil(t, payment.PaidAt)
	firstReceipt := payment.ReceiptNumber

	// Overpay: 25 exceeds the remaining 20
	err = service.RecordPayment(payment, 25)
	assert.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindInvalidAmount))
	assert.Equal(t, float64(80), payment.PaidAmount, "rejected call must not mutate the payment")
	assert.Equal(t, models.PaymentPartial, payment.Status)

	// Exact remainder: 20 settles the payment
	err = service.RecordPayment(payment, 20)
	assert.NoError(t, err)
	assert.Equal(t, float64(100), payment.PaidAmount)
	assert.Equal(t, models.PaymentPaid, payment.Status)
	assert.NotNil(t, payment.PaidAt)
	// ReceiptNumber always references the latest installment.
	assert.NotEmpty(t, payment.ReceiptNumber)
	assert.NotEqual(t, firstReceipt, payment.ReceiptNumber)

	// No transition returns from PAID
	err = service.RecordPayment(payment, 1)
	assert.True(t, utils.IsKind(err, utils.KindInvalidState))
	err = service.Cancel(payment)
	assert.True(t, utils.IsKind(err, utils.KindInvalidState))
}

func TestLedgerService_RecordPayment_RejectsNonPositiveAmounts(t *testing.T) {
	service := NewLedgerService()

	for _, amount := range []float64{0, -5} {
		payment := pendingPayment(50)
		err := service.RecordPayment(payment, amount)
		assert.True(t, utils.IsKind(err, utils.KindInvalidAmount), "amount %v must be rejected", amount)
		assert.Equal(t, float64(0), payment.PaidAmount)
		assert.Equal(t, models.PaymentPending, payment.Status)
	}
}

func TestLedgerService_RecordPayment_IsMonotonic(t *testing.T) {
	service := NewLedgerService()
	payment := pendingPayment(60)

	previous := payment.PaidAmount
	for _, amount := range []float64{10, 20, 30} {
		err := service.RecordPayment(payment, amount)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, payment.PaidAmount, previous)
		previous = payment.PaidAmount
	}
	assert.Equal(t, models.PaymentPaid, payment.Status)
}

func TestLedgerService_StatusDerivedFromAmounts(t *testing.T) {
	service := NewLedgerService()
	payment := pendingPayment(30)

	// PENDING <=> paidAmount = 0
	assert.Equal(t, models.PaymentPending, payment.Status)

	// PARTIAL <=> 0 < paidAmount < amount
	assert.NoError(t, service.RecordPayment(payment, 10.5))
	assert.Equal(t, models.PaymentPartial, payment.Status)

	// PAID <=> paidAmount = amount
	assert.NoError(t, service.RecordPayment(payment, 19.5))
	assert.Equal(t, models.PaymentPaid, payment.Status)
}

func TestLedgerService_Cancel_IsTerminal(t *testing.T) {
	service := NewLedgerService()
	payment := pendingPayment(100)
	assert.NoError(t, service.RecordPayment(payment, 40))

	err := service.Cancel(payment)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCancelled, payment.Status)
	assert.Equal(t, float64(40), payment.PaidAmount, "paid amount is frozen on cancellation")

	// Any further transition fails
	err = service.RecordPayment(payment, 10)
	assert.True(t, utils.IsKind(err, utils.KindInvalidState))
	err = service.Cancel(payment)
	assert.True(t, utils.IsKind(err, utils.KindInvalidState))
	assert.Equal(t, float64(40), payment.PaidAmount)
}

func TestLedgerService_Summarize(t *testing.T) {
	service := NewLedgerService()

	payments := []models.Payment{
		{Amount: 100, PaidAmount: 100, Status: models.PaymentPaid},
		{Amount: 50, PaidAmount: 20, Status: models.PaymentPartial},
		{Amount: 80, PaidAmount: 0, Status: models.PaymentPending},
		{Amount: 30, PaidAmount: 10, Status: models.PaymentCancelled},
	}

	summary := service.Summarize(payments)

	// 100 + 50 + 80 + 30 = 260 owed, 100 + 20 + 0 + 10 = 130 collected,
	// and only the PARTIAL and PENDING rows still count as pending.
	assert.Equal(t, float64(260), summary.TotalAmount)
	assert.Equal(t, float64(130), summary.TotalPaid)
	assert.Equal(t, 2, summary.PendingCount)
}

func TestLedgerService_Summarize_Empty(t *testing.T) {
	service := NewLedgerService()

	summary := service.Summarize(nil)

	assert.Equal(t, float64(0), summary.TotalAmount)
	assert.Equal(t, float64(0), summary.TotalPaid)
	assert.Equal(t, 0, summary.PendingCount)
}
