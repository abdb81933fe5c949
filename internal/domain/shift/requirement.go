package shift

import (
	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
)

// RequireShiftWhenRoleUnknown is the fail-closed policy: when role metadata
// is missing or unreadable, the user is treated as till staff and must open
// a POS shift before acting.
const RequireShiftWhenRoleUnknown = true

// RequiresPOSShift decides whether a user's role obliges them to run a cash
// drawer. A matching role record wins; otherwise the built-in role defaults
// apply, and unknown roles fall back to the fail-closed policy.
func RequiresPOSShift(primaryRole user.Role, rec *role.Role) bool {
	if rec != nil {
		return rec.RequiresPOSShift
	}
	switch primaryRole {
	case user.RoleAdmin:
		return false
	case user.RoleManager, user.RoleCashier:
		return true
	default:
		return RequireShiftWhenRoleUnknown
	}
}
