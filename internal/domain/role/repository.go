package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id string, businessID string) (Role, error)
	GetByName(ctx context.Context, businessID string, name string) (Role, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Role, error)
	Update(ctx context.Context, r Role) error
	Delete(ctx context.Context, id string, businessID string) error
	// CountAssignments returns the number of active assignments of the role.
	CountAssignments(ctx context.Context, roleID string) (int64, error)
}

type UserRoleRepository interface {
	Assign(ctx context.Context, ur UserRole) (UserRole, error)
	Revoke(ctx context.Context, userID string, roleID string) error
	ListByUser(ctx context.Context, userID string) ([]UserRole, error)
}

type UserPermissionRepository interface {
	Grant(ctx context.Context, up UserPermission) (UserPermission, error)
	Revoke(ctx context.Context, userID string, permission string) error
	ListByUser(ctx context.Context, userID string) ([]UserPermission, error)
}
