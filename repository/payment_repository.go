package repository

import (
	"database/sql"
	"fmt"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
)

// PaymentRepository handles payment data operations. Payment rows are only
// ever inserted and mutated, never deleted.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreateAll inserts a set of payment rows in one transaction, so a billing
// period is either generated completely or not at all
func (r *PaymentRepository) CreateAll(payments []models.Payment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (member_id, month, year, type, description, amount, paid_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	for i := range payments {
		payment := &payments[i]
		err := tx.QueryRow(query, payment.MemberID, payment.Month, payment.Year,
			payment.Type, payment.Description, payment.Amount, payment.PaidAmount,
			payment.Status).Scan(&payment.ID, &payment.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %v", err)
		}
	}

	return tx.Commit()
}

// LoadByMember retrieves all payment rows for a member
func (r *PaymentRepository) LoadByMember(memberID int) ([]models.Payment, error) {
	query := `
		SELECT id, member_id, month, year, type, description, amount, paid_amount,
			status, receipt_number, paid_at, created_at
		FROM payments
		WHERE member_id = $1
		ORDER BY year DESC, month DESC, type
	`
	rows, err := r.db.Query(query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}

	return payments, rows.Err()
}

// GetByID retrieves a payment by its ID
func (r *PaymentRepository) GetByID(paymentID int) (*models.Payment, error) {
	query := `
		SELECT id, member_id, month, year, type, description, amount, paid_amount,
			status, receipt_number, paid_at, created_at
		FROM payments
		WHERE id = $1
	`
	return scanPayment(r.db.QueryRow(query, paymentID))
}

// PersistMutation writes back the fields a ledger transition may change
func (r *PaymentRepository) PersistMutation(payment *models.Payment) error {
	query := `
		UPDATE payments
		SET paid_amount = $1, status = $2, receipt_number = $3, paid_at = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(query, payment.PaidAmount, payment.Status,
		nullString(payment.ReceiptNumber), payment.PaidAt, payment.ID)
	return err
}

func scanPayment(scanner interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	var payment models.Payment
	var receiptNumber sql.NullString
	var paidAt sql.NullTime

	err := scanner.Scan(
		&payment.ID, &payment.MemberID, &payment.Month, &payment.Year,
		&payment.Type, &payment.Description, &payment.Amount, &payment.PaidAmount,
		&payment.Status, &receiptNumber, &paidAt, &payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.ReceiptNumber = receiptNumber.String
	if paidAt.Valid {
		payment.PaidAt = &paidAt.Time
	}
	return &payment, nil
}
