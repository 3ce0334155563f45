package services

import (
	"fmt"
	"time"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/repository"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
)

// MemberService handles membership record business logic. Sport selection
// mutations go through the selection engine and are persisted only after the
// engine accepts them, so a failed call never leaves a half-applied record.
type MemberService struct {
	memberRepo        *repository.MemberRepository
	catalogService    *CatalogService
	familyService     *FamilyService
	selectionService  *SelectionService
	permissionService *PermissionService
}

// NewMemberService creates a new member service
func NewMemberService(
	memberRepo *repository.MemberRepository,
	catalogService *CatalogService,
	familyService *FamilyService,
	selectionService *SelectionService,
	permissionService *PermissionService,
) *MemberService {
	return &MemberService{
		memberRepo:        memberRepo,
		catalogService:    catalogService,
		familyService:     familyService,
		selectionService:  selectionService,
		permissionService: permissionService,
	}
}

// CreateMember validates and persists a new membership record
func (s *MemberService) CreateMember(user *models.User, req *models.CreateMemberRequest) (*models.Member, error) {
	if !s.permissionService.HasPermission(user, models.CapAdd) {
		return nil, utils.NewForbiddenError("not allowed to add members")
	}

	if err := utils.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.SecondName, "second name"); err != nil {
		return nil, err
	}
	dni := utils.NormalizeDNI(req.DNI)
	if err := utils.ValidateRequired(dni, "dni"); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.GetByDNI(dni)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if existing != nil {
		return nil, utils.NewValidationError(fmt.Sprintf("a member with dni %s already exists", dni))
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, utils.NewValidationError("birthdate must be in YYYY-MM-DD format")
	}

	status, familyHeadID, err := s.resolveFamilyFields(req.FamilyGroupStatus, req.FamilyHeadID)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		Name:              req.Name,
		SecondName:        req.SecondName,
		DNI:               dni,
		Birthdate:         birthdate,
		Phone:             req.Phone,
		Address:           req.Address,
		Email:             req.Email,
		Active:            true,
		Sports:            []models.SportSelection{},
		FamilyGroupStatus: status,
		FamilyHeadID:      familyHeadID,
	}

	if req.SocietaryQuoteID != nil {
		quote, err := s.catalogService.GetQuote(*req.SocietaryQuoteID)
		if err != nil {
			return nil, err
		}
		member.SocietaryQuote = quote
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return member, nil
}

// resolveFamilyFields validates the family-group role requested for a record
func (s *MemberService) resolveFamilyFields(rawStatus string, familyHeadID *int) (models.FamilyGroupStatus, *int, error) {
	status := models.FamilyGroupStatus(rawStatus)
	if rawStatus == "" {
		status = models.FamilyGroupNone
	}

	switch status {
	case models.FamilyGroupNone, models.FamilyGroupHead:
		if familyHeadID != nil {
			return "", nil, utils.NewValidationError("only family members may reference a family head")
		}
		return status, nil, nil
	case models.FamilyGroupMember:
		if familyHeadID == nil {
			return "", nil, utils.NewValidationError("family members must reference a family head")
		}
		head, err := s.memberRepo.GetByID(*familyHeadID)
		if err != nil {
			return "", nil, utils.NewNotFoundError("family head")
		}
		if head.FamilyGroupStatus != models.FamilyGroupHead {
			return "", nil, utils.NewValidationError("referenced member is not a family head")
		}
		return status, familyHeadID, nil
	default:
		return "", nil, utils.NewValidationError(fmt.Sprintf("unknown family group status %q", rawStatus))
	}
}

// UpdateMember edits the direct fields of a membership record
func (s *MemberService) UpdateMember(user *models.User, req *models.UpdateMemberRequest) (*models.Member, error) {
	if !s.permissionService.HasPermission(user, models.CapEdit) {
		return nil, utils.NewForbiddenError("not allowed to edit members")
	}

	member, err := s.memberRepo.GetByID(req.ID)
	if err != nil {
		return nil, utils.NewNotFoundError("member")
	}

	member.Name = req.Name
	member.SecondName = req.SecondName
	member.Phone = req.Phone
	member.Address = req.Address
	member.Email = req.Email

	if err := s.memberRepo.Save(member); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return member, nil
}

// ListMembers returns every membership record
func (s *MemberService) ListMembers(user *models.User) ([]models.Member, error) {
	if !s.permissionService.HasPermission(user, models.CapView) {
		return nil, utils.NewForbiddenError("not allowed to view members")
	}
	return s.memberRepo.LoadAll()
}

// MemberWithFamily is a membership record with its resolved family relation
type MemberWithFamily struct {
	Member models.Member      `json:"member"`
	Family models.FamilyGroup `json:"family"`
}

// GetMember returns a membership record with its family relation resolved
func (s *MemberService) GetMember(user *models.User, memberID int) (*MemberWithFamily, error) {
	if !s.permissionService.HasPermission(user, models.CapView) {
		return nil, utils.NewForbiddenError("not allowed to view members")
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return nil, utils.NewNotFoundError("member")
	}
	all, err := s.memberRepo.LoadAll()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	return &MemberWithFamily{
		Member: *member,
		Family: s.familyService.Resolve(member, all),
	}, nil
}

// ToggleActive flips the soft-delete flag of a membership record
func (s *MemberService) ToggleActive(user *models.User, memberID int, active bool) error {
	if !s.permissionService.HasPermission(user, models.CapToggleActivate) {
		return utils.NewForbiddenError("not allowed to activate or deactivate members")
	}

	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		return utils.NewNotFoundError("member")
	}
	if err := s.memberRepo.SetActive(memberID, active); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// SelectSport adds or removes a sport selection through the selection engine
func (s *MemberService) SelectSport(user *models.User, req *models.SelectSportRequest) (*models.Member, error) {
	if !s.permissionService.HasPermission(user, models.CapEdit) {
		return nil, utils.NewForbiddenError("not allowed to edit members")
	}
	if !s.permissionService.CanAccessSport(user, req.SportID) {
		return nil, utils.NewForbiddenError("not allowed to manage this sport")
	}

	member, head, err := s.loadMemberWithHead(req.MemberID)
	if err != nil {
		return nil, err
	}

	if err := s.selectionService.SetSportSelected(member, head, req.SportID, req.Selected); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(member); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return member, nil
}

// SetPrincipalSport designates the member's principal selection
func (s *MemberService) SetPrincipalSport(user *models.User, req *models.SetPrincipalSportRequest) (*models.Member, error) {
	if !s.permissionService.HasPermission(user, models.CapEdit) {
		return nil, utils.NewForbiddenError("not allowed to edit members")
	}
	if !s.permissionService.CanAccessSport(user, req.SportID) {
		return nil, utils.NewForbiddenError("not allowed to manage this sport")
	}

	member, head, err := s.loadMemberWithHead(req.MemberID)
	if err != nil {
		return nil, err
	}

	if err := s.selectionService.SetPrincipalSport(member, head, req.SportID); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(member); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return member, nil
}

// SetQuoteForSport attaches a catalog quote to the member's sport selection
func (s *MemberService) SetQuoteForSport(user *models.User, req *models.SetQuoteRequest) (*models.Member, error) {
	if !s.permissionService.HasPermission(user, models.CapEdit) {
		return nil, utils.NewForbiddenError("not allowed to edit members")
	}
	if !s.permissionService.CanAccessSport(user, req.SportID) {
		return nil, utils.NewForbiddenError("not allowed to manage this sport")
	}

	member, err := s.memberRepo.GetByID(req.MemberID)
	if err != nil {
		return nil, utils.NewNotFoundError("member")
	}
	sport, err := s.catalogService.GetSport(req.SportID)
	if err != nil {
		return nil, err
	}

	if err := s.selectionService.SetQuoteForSport(member, sport, req.QuoteID); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(member); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return member, nil
}

// loadMemberWithHead loads a member plus its resolved family head
func (s *MemberService) loadMemberWithHead(memberID int) (*models.Member, *models.Member, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return nil, nil, utils.NewNotFoundError("member")
	}
	all, err := s.memberRepo.LoadAll()
	if err != nil {
		return nil, nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	group := s.familyService.Resolve(member, all)
	return member, group.Head, nil
}
