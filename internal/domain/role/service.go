package role

import "context"

type RBACService interface {
	ListRoles(ctx context.Context, businessID string) ([]RoleResponse, error)
	GetRole(ctx context.Context, businessID string, id string) (RoleResponse, error)
	CreateRole(ctx context.Context, businessID string, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, businessID string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, businessID string, id string) error

	AssignRole(ctx context.Context, businessID string, actorID string, req AssignRoleRequest) error
	RevokeRole(ctx context.Context, businessID string, userID string, roleID string) error
	GetUserRoles(ctx context.Context, businessID string, userID string) ([]UserRole, error)

	GrantPermission(ctx context.Context, businessID string, actorID string, req GrantPermissionRequest) error
	RevokePermission(ctx context.Context, businessID string, userID string, permission string) error
	// GetUserPermissions returns the effective permission set: the union of
	// every active role bundle plus direct grants, served from the cache.
	GetUserPermissions(ctx context.Context, businessID string, userID string) ([]string, error)

	// InvalidateCache drops the cached permission set for a user. Called on
	// login, logout and any role or grant mutation.
	InvalidateCache(userID string)
}
