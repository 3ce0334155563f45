package services

import (
	"fmt"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
)

// SelectionService enforces which sport/quote combinations a member may hold.
// It is the authority for the family inheritance rule: a family member whose
// head has a principal sport must keep that sport selected and principal, and
// no call through this service can strip it.
type SelectionService struct {
	familyService *FamilyService
}

// NewSelectionService creates a new selection service
func NewSelectionService(familyService *FamilyService) *SelectionService {
	return &SelectionService{
		familyService: familyService,
	}
}

// SetSportSelected adds or removes the selection for sportID on the member.
// Deselecting the sport inherited from the family head is a no-op. head may
// be nil for records outside a family group.
func (s *SelectionService) SetSportSelected(member *models.Member, head *models.Member, sportID int, selected bool) error {
	inherited := s.familyService.InheritedPrincipalSportID(member, head)

	if !selected {
		if inherited != nil && *inherited == sportID {
			// Inherited principal sport cannot be deselected.
			return nil
		}
		s.removeSelection(member, sportID)
		s.ensureInherited(member, inherited)
		return nil
	}

	if member.SelectionBySport(sportID) == nil {
		isPrincipal := inherited != nil && *inherited == sportID
		if isPrincipal {
			s.clearPrincipal(member)
		}
		member.Sports = append(member.Sports, models.SportSelection{
			SportID:     sportID,
			IsPrincipal: isPrincipal,
		})
	}
	s.ensureInherited(member, inherited)
	return nil
}

// SetPrincipalSport flags sportID as the member's single principal selection.
// Fails when the principal is fixed by family inheritance, or when the sport
// is not among the member's selections.
func (s *SelectionService) SetPrincipalSport(member *models.Member, head *models.Member, sportID int) error {
	if s.familyService.InheritedPrincipalSportID(member, head) != nil {
		return utils.NewInvariantViolationError("principal sport is inherited from the family head and cannot be overridden")
	}
	if member.SelectionBySport(sportID) == nil {
		return utils.NewNotFoundError(fmt.Sprintf("sport %d selection", sportID))
	}

	s.clearPrincipal(member)
	member.SelectionBySport(sportID).IsPrincipal = true
	return nil
}

// SetQuoteForSport attaches one of the sport's catalog quotes to the member's
// selection for that sport.
func (s *SelectionService) SetQuoteForSport(member *models.Member, sport *models.Sport, quoteID int) error {
	if sport == nil {
		return utils.NewNotFoundError("sport")
	}
	selection := member.SelectionBySport(sport.ID)
	if selection == nil {
		return utils.NewNotFoundError(fmt.Sprintf("sport %d selection", sport.ID))
	}
	quote := sport.QuoteByID(quoteID)
	if quote == nil {
		return utils.NewNotFoundError(fmt.Sprintf("quote %d for sport %d", quoteID, sport.ID))
	}

	id := quote.ID
	selection.QuoteID = &id
	return nil
}

// ensureInherited re-adds the inherited principal selection if a mutation
// stripped it. Inheritance is re-validated after every change instead of
// trusting earlier state.
func (s *SelectionService) ensureInherited(member *models.Member, inherited *int) {
	if inherited == nil {
		return
	}
	selection := member.SelectionBySport(*inherited)
	if selection == nil {
		s.clearPrincipal(member)
		member.Sports = append(member.Sports, models.SportSelection{
			SportID:     *inherited,
			IsPrincipal: true,
		})
		return
	}
	if !selection.IsPrincipal {
		s.clearPrincipal(member)
		selection.IsPrincipal = true
	}
}

func (s *SelectionService) removeSelection(member *models.Member, sportID int) {
	for i := range member.Sports {
		if member.Sports[i].SportID == sportID {
			member.Sports = append(member.Sports[:i], member.Sports[i+1:]...)
			return
		}
	}
}

func (s *SelectionService) clearPrincipal(member *models.Member) {
	for i := range member.Sports {
		member.Sports[i].IsPrincipal = false
	}
}
