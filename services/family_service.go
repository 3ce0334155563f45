package services

import (
	"github.com/PelvK/club-sarmiento-management-sub001/models"
)

// FamilyService resolves family-group relations between membership records.
// It is a pure query over an in-memory record set; inheritance is always
// recomputed from the head rather than copied onto members, so a later change
// of the head's principal sport can never leave stale data behind.
type FamilyService struct{}

// NewFamilyService creates a new family service
func NewFamilyService() *FamilyService {
	return &FamilyService{}
}

// Resolve computes the family head and family members for a record.
// A dangling head reference resolves to a nil head, never an error.
func (s *FamilyService) Resolve(member *models.Member, all []models.Member) models.FamilyGroup {
	group := models.FamilyGroup{Members: []models.Member{}}

	if member.FamilyGroupStatus == models.FamilyGroupMember && member.FamilyHeadID != nil {
		for i := range all {
			if all[i].ID == *member.FamilyHeadID {
				group.Head = &all[i]
				break
			}
		}
	}

	for i := range all {
		if all[i].FamilyHeadID != nil && *all[i].FamilyHeadID == member.ID {
			group.Members = append(group.Members, all[i])
		}
	}

	return group
}

// PrincipalSportID returns the id of the record's principal sport selection,
// or nil when the record has none.
func (s *FamilyService) PrincipalSportID(member *models.Member) *int {
	if member == nil {
		return nil
	}
	if selection := member.PrincipalSelection(); selection != nil {
		return &selection.SportID
	}
	return nil
}

// InheritedPrincipalSportID returns the sport id a family member inherits from
// its head, or nil when the record is not a family member or the head has no
// principal sport.
func (s *FamilyService) InheritedPrincipalSportID(member *models.Member, head *models.Member) *int {
	if member.FamilyGroupStatus != models.FamilyGroupMember || head == nil {
		return nil
	}
	return s.PrincipalSportID(head)
}
