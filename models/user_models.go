package models

// Capability names one gated domain operation a user may invoke
type Capability string

const (
	CapAdd             Capability = "can_add"
	CapEdit            Capability = "can_edit"
	CapDelete          Capability = "can_delete"
	CapView            Capability = "can_view"
	CapManagePayments  Capability = "can_manage_payments"
	CapGenerateReports Capability = "can_generate_reports"
	CapToggleActivate  Capability = "can_toggle_activate"
)

// Permissions is the stored capability set for a non-admin user. Flags that
// were never granted stay false.
type Permissions struct {
	CanAdd             bool `json:"can_add"`
	CanEdit            bool `json:"can_edit"`
	CanDelete          bool `json:"can_delete"`
	CanView            bool `json:"can_view"`
	CanManagePayments  bool `json:"can_manage_payments"`
	CanGenerateReports bool `json:"can_generate_reports"`
	CanToggleActivate  bool `json:"can_toggle_activate"`
}

// User represents the caller identity supplied by the auth collaborator
type User struct {
	ID             int         `json:"id"`
	Username       string      `json:"username"`
	IsAdmin        bool        `json:"isAdmin"`
	Permissions    Permissions `json:"permissions"`
	SportSupported []int       `json:"sport_supported"`
}
