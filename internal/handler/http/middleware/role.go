package middleware

import (
	"fmt"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok || identity.Role != string(user.RoleAdmin) {
			response.Forbidden(w, response.CodeForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManager requires the manager or admin role.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			response.Forbidden(w, response.CodeForbidden, "Manager access required")
			return
		}
		callerRole := user.Role(identity.Role)
		if callerRole != user.RoleManager && callerRole != user.RoleAdmin {
			response.Forbidden(w, response.CodeForbidden, "Manager access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks the caller's effective permission set through the
// RBAC service, so direct grants and custom roles count.
func RequirePermission(rbac role.RBACService, permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				response.Forbidden(w, response.CodeForbidden, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			perms, err := rbac.GetUserPermissions(r.Context(), identity.BusinessID, identity.UserID)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			for _, p := range perms {
				if p == permission {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, response.CodeForbidden, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
		})
	}
}
