package role

// Permission names understood by the permission middleware.
const (
	PermPOSSale         = "pos.sale"
	PermPOSRefund       = "pos.refund"
	PermPOSVoid         = "pos.void"
	PermShiftsManage    = "shifts.manage"
	PermSchedulesManage = "schedules.manage"
	PermUsersManage     = "users.manage"
	PermRolesManage     = "roles.manage"
	PermReportsView     = "reports.view"
	PermSettingsManage  = "settings.manage"
	PermDatabaseManage  = "database.manage"
)

// System role names seeded for every new business.
const (
	SystemRoleAdmin   = "admin"
	SystemRoleManager = "manager"
	SystemRoleCashier = "cashier"
)

// SystemDefaults returns the role bundles seeded at business registration.
// IDs and timestamps are filled in by the caller.
func SystemDefaults(businessID string) []Role {
	return []Role{
		{
			BusinessID:  businessID,
			Name:        SystemRoleAdmin,
			Description: "Business owner with full access",
			Permissions: []string{
				PermPOSSale, PermPOSRefund, PermPOSVoid,
				PermShiftsManage, PermSchedulesManage,
				PermUsersManage, PermRolesManage,
				PermReportsView, PermSettingsManage, PermDatabaseManage,
			},
			RequiresPOSShift: false,
			IsSystem:         true,
		},
		{
			BusinessID:  businessID,
			Name:        SystemRoleManager,
			Description: "Approves overrides and manages schedules",
			Permissions: []string{
				PermPOSSale, PermPOSRefund, PermPOSVoid,
				PermShiftsManage, PermSchedulesManage, PermReportsView,
			},
			RequiresPOSShift: true,
			IsSystem:         true,
		},
		{
			BusinessID:       businessID,
			Name:             SystemRoleCashier,
			Description:      "Runs a till",
			Permissions:      []string{PermPOSSale, PermPOSRefund, PermPOSVoid},
			RequiresPOSShift: true,
			IsSystem:         true,
		},
	}
}
