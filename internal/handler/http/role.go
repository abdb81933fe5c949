package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/handler/http/middleware"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RoleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
	UserRoles(w http.ResponseWriter, r *http.Request)
	GrantPermission(w http.ResponseWriter, r *http.Request)
	RevokePermission(w http.ResponseWriter, r *http.Request)
	UserPermissions(w http.ResponseWriter, r *http.Request)
}

type RoleHandlerImpl struct {
	rbacService role.RBACService
}

func NewRoleHandler(rbacService role.RBACService) RoleHandler {
	return &RoleHandlerImpl{rbacService: rbacService}
}

// List implements RoleHandler.
func (h *RoleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	roles, err := h.rbacService.ListRoles(r.Context(), identity.BusinessID)
	if err != nil {
		slog.Error("List roles service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, roles)
}

// Get implements RoleHandler.
func (h *RoleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	found, err := h.rbacService.GetRole(r.Context(), identity.BusinessID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements RoleHandler.
func (h *RoleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq role.CreateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create role decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	created, err := h.rbacService.CreateRole(r.Context(), identity.BusinessID, createReq)
	if err != nil {
		slog.Error("Create role service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Role created successfully", created)
}

// Update implements RoleHandler.
func (h *RoleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq role.UpdateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update role decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	identity, _ := middleware.IdentityFromContext(r.Context())
	updated, err := h.rbacService.UpdateRole(r.Context(), identity.BusinessID, updateReq)
	if err != nil {
		slog.Error("Update role service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role updated successfully", updated)
}

// Delete implements RoleHandler.
func (h *RoleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	if err := h.rbacService.DeleteRole(r.Context(), identity.BusinessID, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete role service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role deleted successfully", nil)
}

// Assign implements RoleHandler.
func (h *RoleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq role.AssignRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign role decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	if err := h.rbacService.AssignRole(r.Context(), identity.BusinessID, identity.UserID, assignReq); err != nil {
		slog.Error("Assign role service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role assigned successfully", nil)
}

// Revoke implements RoleHandler.
func (h *RoleHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	err := h.rbacService.RevokeRole(r.Context(), identity.BusinessID, chi.URLParam(r, "userID"), chi.URLParam(r, "roleID"))
	if err != nil {
		slog.Error("Revoke role service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role revoked successfully", nil)
}

// UserRoles implements RoleHandler.
func (h *RoleHandlerImpl) UserRoles(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	assignments, err := h.rbacService.GetUserRoles(r.Context(), identity.BusinessID, chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, assignments)
}

// GrantPermission implements RoleHandler.
func (h *RoleHandlerImpl) GrantPermission(w http.ResponseWriter, r *http.Request) {
	var grantReq role.GrantPermissionRequest

	if err := json.NewDecoder(r.Body).Decode(&grantReq); err != nil {
		slog.Error("Grant permission decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	if err := h.rbacService.GrantPermission(r.Context(), identity.BusinessID, identity.UserID, grantReq); err != nil {
		slog.Error("Grant permission service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Permission granted successfully", nil)
}

// RevokePermission implements RoleHandler.
func (h *RoleHandlerImpl) RevokePermission(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	err := h.rbacService.RevokePermission(r.Context(), identity.BusinessID, chi.URLParam(r, "userID"), chi.URLParam(r, "permission"))
	if err != nil {
		slog.Error("Revoke permission service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Permission revoked successfully", nil)
}

// UserPermissions implements RoleHandler.
func (h *RoleHandlerImpl) UserPermissions(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	perms, err := h.rbacService.GetUserPermissions(r.Context(), identity.BusinessID, chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, perms)
}
