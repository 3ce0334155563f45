package services

import (
	"github.com/PelvK/club-sarmiento-management-sub001/models"
)

// PermissionService gates which domain operations a caller may invoke.
// Checks live here rather than only in presentation code, so mutating
// operations cannot be reached by skipping the UI.
type PermissionService struct{}

// NewPermissionService creates a new permission service
func NewPermissionService() *PermissionService {
	return &PermissionService{}
}

// HasPermission reports whether the user may invoke the capability. Admins
// always may; for everyone else an unknown or never-granted flag is false.
func (s *PermissionService) HasPermission(user *models.User, capability models.Capability) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin {
		return true
	}

	switch capability {
	case models.CapAdd:
		return user.Permissions.CanAdd
	case models.CapEdit:
		return user.Permissions.CanEdit
	case models.CapDelete:
		return user.Permissions.CanDelete
	case models.CapView:
		return user.Permissions.CanView
	case models.CapManagePayments:
		return user.Permissions.CanManagePayments
	case models.CapGenerateReports:
		return user.Permissions.CanGenerateReports
	case models.CapToggleActivate:
		return user.Permissions.CanToggleActivate
	default:
		return false
	}
}

// CanAccessSport reports whether the user may operate on the sport. An empty
// assigned set means no access, never all-access.
func (s *PermissionService) CanAccessSport(user *models.User, sportID int) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin {
		return true
	}
	for _, assigned := range user.SportSupported {
		if assigned == sportID {
			return true
		}
	}
	return false
}
