package role

import (
	"time"

	"github.com/auraswift/pos-backend-go/internal/pkg/validator"
)

type CreateRoleRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Permissions      []string `json:"permissions"`
	RequiresPOSShift *bool    `json:"requires_pos_shift"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 50 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID               string    `json:"id"`
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	Permissions      *[]string `json:"permissions"`
	RequiresPOSShift *bool     `json:"requires_pos_shift"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{Field: "role_id", Message: "role_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GrantPermissionRequest struct {
	UserID     string `json:"user_id"`
	Permission string `json:"permission"`
}

func (r *GrantPermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	if validator.IsEmpty(r.Permission) {
		errs = append(errs, validator.ValidationError{Field: "permission", Message: "permission is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	ID               string   `json:"id"`
	BusinessID       string   `json:"business_id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Permissions      []string `json:"permissions"`
	RequiresPOSShift bool     `json:"requires_pos_shift"`
	IsSystem         bool     `json:"is_system"`
	CreatedAt        string   `json:"created_at"`
}

func ToResponse(r Role) RoleResponse {
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return RoleResponse{
		ID:               r.ID,
		BusinessID:       r.BusinessID,
		Name:             r.Name,
		Description:      r.Description,
		Permissions:      perms,
		RequiresPOSShift: r.RequiresPOSShift,
		IsSystem:         r.IsSystem,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}
