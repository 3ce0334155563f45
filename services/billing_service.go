package services

import (
	"fmt"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/repository"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
)

// BillingService generates the monthly dues rows for a member from its
// societary quote and sport selections. Selections are classified as
// principal or secondary from the IsPrincipal flag; generation is idempotent
// per billing period, rows already present are skipped.
type BillingService struct {
	paymentRepo       *repository.PaymentRepository
	memberRepo        *repository.MemberRepository
	catalogService    *CatalogService
	permissionService *PermissionService
}

// NewBillingService creates a new billing service
func NewBillingService(
	paymentRepo *repository.PaymentRepository,
	memberRepo *repository.MemberRepository,
	catalogService *CatalogService,
	permissionService *PermissionService,
) *BillingService {
	return &BillingService{
		paymentRepo:       paymentRepo,
		memberRepo:        memberRepo,
		catalogService:    catalogService,
		permissionService: permissionService,
	}
}

// GenerateMonthlyDues creates and persists the dues rows for one member and
// billing period, returning the newly created rows.
func (s *BillingService) GenerateMonthlyDues(user *models.User, memberID, month, year int) ([]models.Payment, error) {
	if !s.permissionService.HasPermission(user, models.CapManagePayments) {
		return nil, utils.NewForbiddenError("not allowed to manage payments")
	}
	if err := utils.ValidateBillingMonth(month); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return nil, utils.NewNotFoundError("member")
	}
	if !member.Active {
		return nil, utils.NewInvalidStateError("cannot generate dues for an inactive member")
	}

	sports, err := s.catalogService.LoadSports()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	existing, err := s.paymentRepo.LoadByMember(memberID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	dues := s.BuildMonthlyDues(member, sports, existing, month, year)
	if len(dues) > 0 {
		if err := s.paymentRepo.CreateAll(dues); err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToStore)
		}
	}
	return dues, nil
}

// BuildMonthlyDues computes the dues rows a member owes for one billing
// period. Pure: it reads the member, catalog and existing rows and performs
// no persistence.
func (s *BillingService) BuildMonthlyDues(member *models.Member, sports []models.Sport, existing []models.Payment, month, year int) []models.Payment {
	var dues []models.Payment

	if member.SocietaryQuote != nil {
		dues = appendUnlessBilled(dues, existing, models.Payment{
			MemberID:    member.ID,
			Month:       month,
			Year:        year,
			Type:        models.PaymentSocietaryOnly,
			Description: fmt.Sprintf("%s %02d/%d", member.SocietaryQuote.Name, month, year),
			Amount:      utils.Round(member.SocietaryQuote.Price),
			Status:      models.PaymentPending,
		})
	}

	for _, selection := range member.Sports {
		if selection.QuoteID == nil {
			// No quote attached yet, nothing to bill for this sport.
			continue
		}
		sport, quote := findSportQuote(sports, selection.SportID, *selection.QuoteID)
		if quote == nil {
			continue
		}

		paymentType := models.PaymentSecondarySport
		if selection.IsPrincipal {
			paymentType = models.PaymentPrincipalSport
		}
		dues = appendUnlessBilled(dues, existing, models.Payment{
			MemberID:    member.ID,
			Month:       month,
			Year:        year,
			Type:        paymentType,
			Description: fmt.Sprintf("%s - %s %02d/%d", sport.Name, quote.Name, month, year),
			Amount:      utils.Round(quote.Price),
			Status:      models.PaymentPending,
		})
	}

	return dues
}

// appendUnlessBilled skips rows already generated for the same period
func appendUnlessBilled(dues []models.Payment, existing []models.Payment, candidate models.Payment) []models.Payment {
	for _, payment := range existing {
		if payment.Month == candidate.Month && payment.Year == candidate.Year &&
			payment.Type == candidate.Type && payment.Description == candidate.Description {
			return dues
		}
	}
	return append(dues, candidate)
}

func findSportQuote(sports []models.Sport, sportID, quoteID int) (*models.Sport, *models.Quote) {
	for i := range sports {
		if sports[i].ID == sportID {
			return &sports[i], sports[i].QuoteByID(quoteID)
		}
	}
	return nil, nil
}
