package middleware

import (
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
)

// RequireActiveShift gates drawer operations: callers whose role obliges
// them to run a till must have an open POS shift. Role metadata that cannot
// be loaded counts as requiring a shift.
func RequireActiveShift(roleRepo role.RoleRepository, posShiftRepo shift.POSShiftRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				response.Forbidden(w, response.CodeNoActiveShift, "An active shift is required")
				return
			}

			var rec *role.Role
			if found, err := roleRepo.GetByName(r.Context(), identity.BusinessID, identity.Role); err == nil {
				rec = &found
			}

			if !shift.RequiresPOSShift(user.Role(identity.Role), rec) {
				next.ServeHTTP(w, r)
				return
			}

			active, err := posShiftRepo.GetActiveByUser(r.Context(), identity.UserID)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if active == nil {
				response.Forbidden(w, response.CodeNoActiveShift, "Start a shift before recording sales")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
