package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/auth"
	"github.com/auraswift/pos-backend-go/internal/handler/http/middleware"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

func trackingFromRequest(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}

// Register implements AuthHandler.
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterBusinessRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	tokens, err := h.authService.RegisterBusiness(r.Context(), registerReq, trackingFromRequest(r))
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Business registered successfully", tokens)
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	tokens, err := h.authService.Login(r.Context(), loginReq, trackingFromRequest(r))
	if err != nil {
		slog.Warn("Login failed", "email", loginReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged in successfully", tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var logoutReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&logoutReq); err != nil {
		slog.Error("Logout decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	if err := h.authService.Logout(r.Context(), logoutReq.RefreshToken, identity.UserID); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// RefreshToken implements AuthHandler.
func (h *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		slog.Error("RefreshToken decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	token, err := h.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Warn("RefreshToken failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

// Me implements AuthHandler. Returns the caller behind the access token,
// re-checked against the database so a deactivated user is refused even
// with a live token.
func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}

	me, err := h.authService.ValidateSession(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, me)
}
