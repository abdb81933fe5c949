package role

import "time"

// Role is a named permission bundle scoped to a business. System roles are
// seeded at registration; their name and permission set are immutable.
type Role struct {
	ID               string
	BusinessID       string
	Name             string
	Description      string
	Permissions      []string
	RequiresPOSShift bool
	IsSystem         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserRole is a user-to-role assignment with its audit trail.
type UserRole struct {
	ID         string
	UserID     string
	RoleID     string
	AssignedBy string
	IsActive   bool
	CreatedAt  time.Time

	// Join
	RoleName *string
}

// UserPermission is a direct permission grant outside any role bundle.
type UserPermission struct {
	ID         string
	UserID     string
	Permission string
	GrantedBy  string
	CreatedAt  time.Time
}
