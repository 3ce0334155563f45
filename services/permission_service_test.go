package services

import (
	"testing"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/stretchr/testify/assert"
)

var allCapabilities = []models.Capability{
	models.CapAdd, models.CapEdit, models.CapDelete, models.CapView,
	models.CapManagePayments, models.CapGenerateReports, models.CapToggleActivate,
}

func TestPermissionService_FailsClosed(t *testing.T) {
	service := NewPermissionService()

	// A non-admin with no granted flags gets nothing.
	user := &models.User{ID: 1, Username: "clerk"}
	for _, capability := range allCapabilities {
		assert.False(t, service.HasPermission(user, capability), "capability %s must default to false", capability)
	}

	// Unknown capabilities are denied too.
	assert.False(t, service.HasPermission(user, models.Capability("can_fly")))

	// Missing identity is denied.
	assert.False(t, service.HasPermission(nil, models.CapView))
}

func TestPermissionService_AdminBypassesFlags(t *testing.T) {
	service := NewPermissionService()

	admin := &models.User{ID: 1, Username: "root", IsAdmin: true}
	for _, capability := range allCapabilities {
		assert.True(t, service.HasPermission(admin, capability))
	}
}

func TestPermissionService_GrantedFlagsOnly(t *testing.T) {
	service := NewPermissionService()

	user := &models.User{
		ID:       2,
		Username: "treasurer",
		Permissions: models.Permissions{
			CanView:           true,
			CanManagePayments: true,
		},
	}

	assert.True(t, service.HasPermission(user, models.CapView))
	assert.True(t, service.HasPermission(user, models.CapManagePayments))
	assert.False(t, service.HasPermission(user, models.CapAdd))
	assert.False(t, service.HasPermission(user, models.CapGenerateReports))
	assert.False(t, service.HasPermission(user, models.CapToggleActivate))
}

func TestPermissionService_CanAccessSport(t *testing.T) {
	service := NewPermissionService()

	coach := &models.User{ID: 3, Username: "coach", SportSupported: []int{1, 4}}
	assert.True(t, service.CanAccessSport(coach, 1))
	assert.True(t, service.CanAccessSport(coach, 4))
	assert.False(t, service.CanAccessSport(coach, 2))

	// An empty assigned set means no access, never all-access.
	clerk := &models.User{ID: 4, Username: "clerk"}
	assert.False(t, service.CanAccessSport(clerk, 1))

	admin := &models.User{ID: 5, Username: "root", IsAdmin: true}
	assert.True(t, service.CanAccessSport(admin, 99))

	assert.False(t, service.CanAccessSport(nil, 1))
}
