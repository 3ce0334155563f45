package services

import (
	"testing"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/utils"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func familyHeadWithPrincipal(sportID int) *models.Member {
	return &models.Member{
		ID:                1,
		Name:              "Carlos",
		SecondName:        "Perez",
		FamilyGroupStatus: models.FamilyGroupHead,
		Sports: []models.SportSelection{
			{SportID: sportID, IsPrincipal: true},
		},
	}
}

func familyMemberOf(head *models.Member) *models.Member {
	return &models.Member{
		ID:                2,
		Name:              "Lucia",
		SecondName:        "Perez",
		FamilyGroupStatus: models.FamilyGroupMember,
		FamilyHeadID:      intPtr(head.ID),
		Sports:            []models.SportSelection{},
	}
}

func TestSelectionService_InheritedPrincipalCannotBeDeselected(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	head := familyHeadWithPrincipal(1)
	member := familyMemberOf(head)
	member.Sports = []models.SportSelection{{SportID: 1, IsPrincipal: true}}

	err := service.SetSportSelected(member, head, 1, false)

	assert.NoError(t, err)
	selection := member.SelectionBySport(1)
	assert.NotNil(t, selection, "inherited sport must stay selected")
	assert.True(t, selection.IsPrincipal, "inherited sport must stay principal")
}

func TestSelectionService_AddingInheritedSportAutoFlagsPrincipal(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	head := familyHeadWithPrincipal(1)
	member := familyMemberOf(head)

	// Selecting the head's principal sport on an empty record must come out
	// principal without a separate SetPrincipalSport call.
	err := service.SetSportSelected(member, head, 1, true)

	assert.NoError(t, err)
	assert.Len(t, member.Sports, 1)
	assert.Equal(t, 1, member.Sports[0].SportID)
	assert.True(t, member.Sports[0].IsPrincipal)
}

func TestSelectionService_InheritedPrincipalReAddedWhenStripped(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	head := familyHeadWithPrincipal(1)
	member := familyMemberOf(head)

	// The member somehow holds only a secondary sport while the head's
	// principal is missing; any mutation must restore the inherited entry.
	member.Sports = []models.SportSelection{{SportID: 3}}

	err := service.SetSportSelected(member, head, 3, false)

	assert.NoError(t, err)
	assert.Nil(t, member.SelectionBySport(3))
	inherited := member.SelectionBySport(1)
	assert.NotNil(t, inherited, "inherited principal sport must be re-added")
	assert.True(t, inherited.IsPrincipal)
	assert.Len(t, member.Sports, 1)
}

func TestSelectionService_MemberKeepsIndependentSecondarySports(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	head := familyHeadWithPrincipal(1)
	member := familyMemberOf(head)

	assert.NoError(t, service.SetSportSelected(member, head, 1, true))
	assert.NoError(t, service.SetSportSelected(member, head, 3, true))

	assert.Len(t, member.Sports, 2)
	assert.False(t, member.SelectionBySport(3).IsPrincipal)

	// Secondary sports can be dropped freely.
	assert.NoError(t, service.SetSportSelected(member, head, 3, false))
	assert.Nil(t, member.SelectionBySport(3))
	assert.NotNil(t, member.SelectionBySport(1))
}

func TestSelectionService_SetPrincipalSport_BlockedByInheritance(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	head := familyHeadWithPrincipal(1)
	member := familyMemberOf(head)
	assert.NoError(t, service.SetSportSelected(member, head, 1, true))
	assert.NoError(t, service.SetSportSelected(member, head, 3, true))

	err := service.SetPrincipalSport(member, head, 3)

	assert.True(t, utils.IsKind(err, utils.KindInvariantViolation))
	assert.True(t, member.SelectionBySport(1).IsPrincipal)
	assert.False(t, member.SelectionBySport(3).IsPrincipal)
}

func TestSelectionService_SetPrincipalSport_RequiresSelection(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	member := &models.Member{
		ID:                5,
		FamilyGroupStatus: models.FamilyGroupNone,
		Sports:            []models.SportSelection{{SportID: 2}},
	}

	err := service.SetPrincipalSport(member, nil, 9)

	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestSelectionService_PrincipalUniqueness(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	member := &models.Member{
		ID:                5,
		FamilyGroupStatus: models.FamilyGroupNone,
		Sports:            []models.SportSelection{},
	}

	assert.NoError(t, service.SetSportSelected(member, nil, 1, true))
	assert.NoError(t, service.SetSportSelected(member, nil, 2, true))
	assert.NoError(t, service.SetSportSelected(member, nil, 3, true))

	// A brand-new selection never becomes principal implicitly.
	assert.Nil(t, member.PrincipalSelection())

	assert.NoError(t, service.SetPrincipalSport(member, nil, 1))
	assert.NoError(t, service.SetPrincipalSport(member, nil, 2))
	assert.NoError(t, service.SetSportSelected(member, nil, 3, false))
	assert.NoError(t, service.SetPrincipalSport(member, nil, 1))

	principals := 0
	for _, selection := range member.Sports {
		if selection.IsPrincipal {
			principals++
		}
	}
	assert.Equal(t, 1, principals)
	assert.Equal(t, 1, member.PrincipalSelection().SportID)
}

func TestSelectionService_RemovingPrincipalLeavesNoPrincipal(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	member := &models.Member{
		ID:                5,
		FamilyGroupStatus: models.FamilyGroupNone,
		Sports:            []models.SportSelection{},
	}
	assert.NoError(t, service.SetSportSelected(member, nil, 1, true))
	assert.NoError(t, service.SetSportSelected(member, nil, 2, true))
	assert.NoError(t, service.SetPrincipalSport(member, nil, 1))

	// Dropping the principal sport is allowed for unrelated records and
	// leaves the record with no principal at all.
	assert.NoError(t, service.SetSportSelected(member, nil, 1, false))

	assert.Nil(t, member.SelectionBySport(1))
	assert.Nil(t, member.PrincipalSelection())
}

func TestSelectionService_SetQuoteForSport(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	sport := &models.Sport{
		ID:   2,
		Name: "Basketball",
		Quotes: []models.Quote{
			{ID: 20, Name: "Cadet", Price: 1500},
			{ID: 21, Name: "Senior", Price: 2500},
		},
	}
	member := &models.Member{
		ID:                5,
		FamilyGroupStatus: models.FamilyGroupNone,
		Sports:            []models.SportSelection{{SportID: 2}},
	}

	// Quote from another sport's catalog is rejected.
	err := service.SetQuoteForSport(member, sport, 99)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
	assert.Nil(t, member.SelectionBySport(2).QuoteID)

	// Sport that is not selected is rejected.
	otherSport := &models.Sport{ID: 7, Name: "Swimming", Quotes: []models.Quote{{ID: 70, Name: "Free", Price: 900}}}
	err = service.SetQuoteForSport(member, otherSport, 70)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	// Valid quote is attached, replacing any previous one.
	assert.NoError(t, service.SetQuoteForSport(member, sport, 20))
	assert.Equal(t, 20, *member.SelectionBySport(2).QuoteID)
	assert.NoError(t, service.SetQuoteForSport(member, sport, 21))
	assert.Equal(t, 21, *member.SelectionBySport(2).QuoteID)
}

func TestSelectionService_HeadAndNoneRecordsUnaffectedByInheritance(t *testing.T) {
	service := NewSelectionService(NewFamilyService())
	head := familyHeadWithPrincipal(1)

	// The head itself can reassign its principal freely.
	assert.NoError(t, service.SetSportSelected(head, nil, 4, true))
	assert.NoError(t, service.SetPrincipalSport(head, nil, 4))
	assert.Equal(t, 4, head.PrincipalSelection().SportID)
	assert.False(t, head.SelectionBySport(1).IsPrincipal)
}
