package services

import (
	"testing"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/stretchr/testify/assert"
)

func TestFamilyService_Resolve_HeadAndMembers(t *testing.T) {
	service := NewFamilyService()

	head := models.Member{ID: 1, FamilyGroupStatus: models.FamilyGroupHead}
	childA := models.Member{ID: 2, FamilyGroupStatus: models.FamilyGroupMember, FamilyHeadID: intPtr(1)}
	childB := models.Member{ID: 3, FamilyGroupStatus: models.FamilyGroupMember, FamilyHeadID: intPtr(1)}
	unrelated := models.Member{ID: 4, FamilyGroupStatus: models.FamilyGroupNone}
	all := []models.Member{head, childA, childB, unrelated}

	// From a child's perspective the head resolves and no members hang off it.
	group := service.Resolve(&childA, all)
	assert.NotNil(t, group.Head)
	assert.Equal(t, 1, group.Head.ID)
	assert.Empty(t, group.Members)

	// From the head's perspective there is no head but both children appear.
	group = service.Resolve(&head, all)
	assert.Nil(t, group.Head)
	assert.Len(t, group.Members, 2)

	// Unrelated records resolve to nothing.
	group = service.Resolve(&unrelated, all)
	assert.Nil(t, group.Head)
	assert.Empty(t, group.Members)
}

func TestFamilyService_Resolve_DanglingHeadIsNil(t *testing.T) {
	service := NewFamilyService()

	orphan := models.Member{ID: 2, FamilyGroupStatus: models.FamilyGroupMember, FamilyHeadID: intPtr(99)}
	all := []models.Member{orphan}

	group := service.Resolve(&orphan, all)

	assert.Nil(t, group.Head, "a dangling head reference resolves to nil, not an error")
}

func TestFamilyService_PrincipalSportID(t *testing.T) {
	service := NewFamilyService()

	withPrincipal := &models.Member{Sports: []models.SportSelection{
		{SportID: 1},
		{SportID: 2, IsPrincipal: true},
	}}
	withoutPrincipal := &models.Member{Sports: []models.SportSelection{{SportID: 1}}}

	assert.Equal(t, 2, *service.PrincipalSportID(withPrincipal))
	assert.Nil(t, service.PrincipalSportID(withoutPrincipal))
	assert.Nil(t, service.PrincipalSportID(nil))
}

func TestFamilyService_InheritedPrincipalSportID(t *testing.T) {
	service := NewFamilyService()

	head := familyHeadWithPrincipal(7)
	member := familyMemberOf(head)

	assert.Equal(t, 7, *service.InheritedPrincipalSportID(member, head))

	// No inheritance without a resolvable head.
	assert.Nil(t, service.InheritedPrincipalSportID(member, nil))

	// No inheritance when the head has no principal sport.
	headNoPrincipal := &models.Member{ID: 1, FamilyGroupStatus: models.FamilyGroupHead}
	assert.Nil(t, service.InheritedPrincipalSportID(member, headNoPrincipal))

	// No inheritance for records outside a family group.
	solo := &models.Member{ID: 9, FamilyGroupStatus: models.FamilyGroupNone}
	assert.Nil(t, service.InheritedPrincipalSportID(solo, head))
}
