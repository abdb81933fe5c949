package rbac

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

type rbacServiceImpl struct {
	roleRepo           role.RoleRepository
	userRoleRepo       role.UserRoleRepository
	userPermissionRepo role.UserPermissionRepository
	userRepo           user.UserRepository
	cache              *permissionCache
}

func NewRBACService(
	roleRepo role.RoleRepository,
	userRoleRepo role.UserRoleRepository,
	userPermissionRepo role.UserPermissionRepository,
	userRepo user.UserRepository,
) role.RBACService {
	return &rbacServiceImpl{
		roleRepo:           roleRepo,
		userRoleRepo:       userRoleRepo,
		userPermissionRepo: userPermissionRepo,
		userRepo:           userRepo,
		cache:              newPermissionCache(),
	}
}

// ListRoles implements role.RBACService.
func (s *rbacServiceImpl) ListRoles(ctx context.Context, businessID string) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.ToResponse(r))
	}
	return responses, nil
}

// GetRole implements role.RBACService.
func (s *rbacServiceImpl) GetRole(ctx context.Context, businessID string, id string) (role.RoleResponse, error) {
	found, err := s.roleRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.ToResponse(found), nil
}

// CreateRole implements role.RBACService.
func (s *rbacServiceImpl) CreateRole(ctx context.Context, businessID string, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	if _, err := s.roleRepo.GetByName(ctx, businessID, req.Name); err == nil {
		return role.RoleResponse{}, role.ErrRoleExists
	}

	requiresShift := true
	if req.RequiresPOSShift != nil {
		requiresShift = *req.RequiresPOSShift
	}
	permissions := req.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	now := time.Now()
	created, err := s.roleRepo.Create(ctx, role.Role{
		ID:               uuid.NewString(),
		BusinessID:       businessID,
		Name:             req.Name,
		Description:      req.Description,
		Permissions:      permissions,
		RequiresPOSShift: requiresShift,
		IsSystem:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}

	slog.Info("role created", "role_id", created.ID, "name", created.Name, "business_id", businessID)
	return role.ToResponse(created), nil
}

// UpdateRole implements role.RBACService. System roles only accept a
// description change; name and permission edits are refused.
func (s *rbacServiceImpl) UpdateRole(ctx context.Context, businessID string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	found, err := s.roleRepo.GetByID(ctx, req.ID, businessID)
	if err != nil {
		return role.RoleResponse{}, err
	}

	if found.IsSystem && (req.Name != nil || req.Permissions != nil || req.RequiresPOSShift != nil) {
		return role.RoleResponse{}, role.ErrSystemRoleProtected
	}

	if req.Name != nil && *req.Name != found.Name {
		if _, err := s.roleRepo.GetByName(ctx, businessID, *req.Name); err == nil {
			return role.RoleResponse{}, role.ErrRoleExists
		}
		found.Name = *req.Name
	}
	if req.Description != nil {
		found.Description = *req.Description
	}
	if req.Permissions != nil {
		found.Permissions = *req.Permissions
	}
	if req.RequiresPOSShift != nil {
		found.RequiresPOSShift = *req.RequiresPOSShift
	}
	found.UpdatedAt = time.Now()

	if err := s.roleRepo.Update(ctx, found); err != nil {
		return role.RoleResponse{}, err
	}
	s.invalidateRoleHolders(ctx, found.ID)

	return role.ToResponse(found), nil
}

// DeleteRole implements role.RBACService. A role still assigned to users
// cannot be deleted.
func (s *rbacServiceImpl) DeleteRole(ctx context.Context, businessID string, id string) error {
	found, err := s.roleRepo.GetByID(ctx, id, businessID)
	if err != nil {
		return err
	}
	if found.IsSystem {
		return role.ErrSystemRoleProtected
	}

	assigned, err := s.roleRepo.CountAssignments(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return role.ErrRoleInUse
	}

	return s.roleRepo.Delete(ctx, id, businessID)
}

// AssignRole implements role.RBACService.
func (s *rbacServiceImpl) AssignRole(ctx context.Context, businessID string, actorID string, req role.AssignRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.roleRepo.GetByID(ctx, req.RoleID, businessID); err != nil {
		return err
	}
	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if target.BusinessID != businessID {
		return user.ErrBusinessMismatch
	}

	_, err = s.userRoleRepo.Assign(ctx, role.UserRole{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		RoleID:     req.RoleID,
		AssignedBy: actorID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return err
	}

	s.cache.drop(req.UserID)
	return nil
}

// RevokeRole implements role.RBACService.
func (s *rbacServiceImpl) RevokeRole(ctx context.Context, businessID string, userID string, roleID string) error {
	if _, err := s.roleRepo.GetByID(ctx, roleID, businessID); err != nil {
		return err
	}
	if err := s.userRoleRepo.Revoke(ctx, userID, roleID); err != nil {
		return err
	}
	s.cache.drop(userID)
	return nil
}

// GetUserRoles implements role.RBACService.
func (s *rbacServiceImpl) GetUserRoles(ctx context.Context, businessID string, userID string) ([]role.UserRole, error) {
	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target.BusinessID != businessID {
		return nil, user.ErrBusinessMismatch
	}
	return s.userRoleRepo.ListByUser(ctx, userID)
}

// GrantPermission implements role.RBACService.
func (s *rbacServiceImpl) GrantPermission(ctx context.Context, businessID string, actorID string, req role.GrantPermissionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if target.BusinessID != businessID {
		return user.ErrBusinessMismatch
	}

	_, err = s.userPermissionRepo.Grant(ctx, role.UserPermission{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Permission: req.Permission,
		GrantedBy:  actorID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return err
	}

	s.cache.drop(req.UserID)
	return nil
}

// RevokePermission implements role.RBACService.
func (s *rbacServiceImpl) RevokePermission(ctx context.Context, businessID string, userID string, permission string) error {
	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if target.BusinessID != businessID {
		return user.ErrBusinessMismatch
	}

	if err := s.userPermissionRepo.Revoke(ctx, userID, permission); err != nil {
		return err
	}
	s.cache.drop(userID)
	return nil
}

// GetUserPermissions implements role.RBACService.
func (s *rbacServiceImpl) GetUserPermissions(ctx context.Context, businessID string, userID string) ([]string, error) {
	if cached, ok := s.cache.get(userID); ok {
		return cached, nil
	}

	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target.BusinessID != businessID {
		return nil, user.ErrBusinessMismatch
	}

	set := make(map[string]struct{})

	assignments, err := s.userRoleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, ur := range assignments {
		r, err := s.roleRepo.GetByID(ctx, ur.RoleID, businessID)
		if err != nil {
			continue
		}
		for _, p := range r.Permissions {
			set[p] = struct{}{}
		}
	}

	grants, err := s.userPermissionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, g := range grants {
		set[g.Permission] = struct{}{}
	}

	perms := make([]string, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	sort.Strings(perms)

	s.cache.set(userID, perms)
	return perms, nil
}

// InvalidateCache implements role.RBACService.
func (s *rbacServiceImpl) InvalidateCache(userID string) {
	s.cache.drop(userID)
}

// invalidateRoleHolders drops cache entries for everyone holding a role.
// Best effort; a failed lookup just means those users refresh lazily.
func (s *rbacServiceImpl) invalidateRoleHolders(ctx context.Context, roleID string) {
	count, err := s.roleRepo.CountAssignments(ctx, roleID)
	if err != nil || count == 0 {
		return
	}
	// Holder lists are not indexed by role, so a role edit clears the whole
	// cache rather than walking every user.
	s.cache.dropAll()
}
