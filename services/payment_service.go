package services

import (
	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/repository"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
)

// PaymentService loads payment rows, applies ledger transitions and persists
// the result. Persistence happens only after a transition succeeds, so a
// rejected call leaves the stored row untouched. Failed calls are never
// retried here: a second RecordPayment would double-apply the amount.
type PaymentService struct {
	paymentRepo       *repository.PaymentRepository
	memberRepo        *repository.MemberRepository
	ledgerService     *LedgerService
	permissionService *PermissionService
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	memberRepo *repository.MemberRepository,
	ledgerService *LedgerService,
	permissionService *PermissionService,
) *PaymentService {
	return &PaymentService{
		paymentRepo:       paymentRepo,
		memberRepo:        memberRepo,
		ledgerService:     ledgerService,
		permissionService: permissionService,
	}
}

// ListByMember retrieves all payment rows for a member
func (s *PaymentService) ListByMember(user *models.User, memberID int) ([]models.Payment, error) {
	if !s.permissionService.HasPermission(user, models.CapView) {
		return nil, utils.NewForbiddenError("not allowed to view payments")
	}
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		return nil, utils.NewNotFoundError("member")
	}
	return s.paymentRepo.LoadByMember(memberID)
}

// RecordInstallment applies an installment to a payment and persists it
func (s *PaymentService) RecordInstallment(user *models.User, paymentID int, amount float64) (*models.Payment, error) {
	if !s.permissionService.HasPermission(user, models.CapManagePayments) {
		return nil, utils.NewForbiddenError("not allowed to manage payments")
	}

	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, utils.NewNotFoundError("payment")
	}

	if err := s.ledgerService.RecordPayment(payment, amount); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.PersistMutation(payment); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return payment, nil
}

// CancelPayment moves a payment to its terminal cancelled state and persists it
func (s *PaymentService) CancelPayment(user *models.User, paymentID int) (*models.Payment, error) {
	if !s.permissionService.HasPermission(user, models.CapManagePayments) {
		return nil, utils.NewForbiddenError("not allowed to manage payments")
	}

	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, utils.NewNotFoundError("payment")
	}

	if err := s.ledgerService.Cancel(payment); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.PersistMutation(payment); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return payment, nil
}

// SummarizeMember aggregates a member's payment rows
func (s *PaymentService) SummarizeMember(user *models.User, memberID int) (*models.PaymentSummary, error) {
	payments, err := s.ListByMember(user, memberID)
	if err != nil {
		return nil, err
	}
	summary := s.ledgerService.Summarize(payments)
	return &summary, nil
}
