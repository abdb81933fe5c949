package middleware

import (
	"context"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/auth"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

// Identity is the authenticated caller pulled from the access token.
type Identity struct {
	UserID     string
	Email      string
	BusinessID string
	Role       string
}

// AuthRequired verifies the token jwtauth.Verifier already parsed, checks it
// is an access token and stashes the caller identity in the context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, response.CodeTokenInvalid, auth.ErrInvalidToken.Error())
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			identity := Identity{}
			identity.UserID, _ = claims["user_id"].(string)
			identity.Email, _ = claims["email"].(string)
			identity.BusinessID, _ = claims["business_id"].(string)
			identity.Role, _ = claims["role"].(string)
			if identity.UserID == "" || identity.BusinessID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromContext returns the caller identity set by AuthRequired.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
