package role

import "errors"

var (
	ErrRoleNotFound        = errors.New("role not found")
	ErrRoleExists          = errors.New("a role with this name already exists")
	ErrRoleInUse           = errors.New("role is assigned to one or more users")
	ErrSystemRoleProtected = errors.New("system roles cannot be renamed, re-permissioned or deleted")
	ErrAssignmentNotFound  = errors.New("role assignment not found")
	ErrPermissionNotFound  = errors.New("permission grant not found")
)
