package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/expiry"
	"github.com/auraswift/pos-backend-go/internal/handler/http/middleware"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExpiryHandler interface {
	CreateBatch(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
	ListNotifications(w http.ResponseWriter, r *http.Request)
	SetNotificationStatus(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type ExpiryHandlerImpl struct {
	expiryService expiry.ExpiryService
}

func NewExpiryHandler(expiryService expiry.ExpiryService) ExpiryHandler {
	return &ExpiryHandlerImpl{expiryService: expiryService}
}

// CreateBatch implements ExpiryHandler.
func (h *ExpiryHandlerImpl) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var createReq expiry.CreateBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create batch decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	created, err := h.expiryService.CreateBatch(r.Context(), identity.BusinessID, createReq)
	if err != nil {
		slog.Error("Create batch service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Batch created successfully", created)
}

// Scan implements ExpiryHandler. On-demand scan for the caller's business.
func (h *ExpiryHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	created, err := h.expiryService.Scan(r.Context(), identity.BusinessID)
	if err != nil {
		slog.Error("Expiry scan service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Scan completed", map[string]int{"notifications_created": created})
}

// ListNotifications implements ExpiryHandler.
func (h *ExpiryHandlerImpl) ListNotifications(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var status *expiry.NotificationStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := expiry.NotificationStatus(v)
		status = &s
	}

	notifications, err := h.expiryService.ListNotifications(r.Context(), identity.BusinessID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, notifications)
}

// SetNotificationStatus implements ExpiryHandler.
func (h *ExpiryHandlerImpl) SetNotificationStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}
	if statusReq.Status != string(expiry.StatusAcknowledged) && statusReq.Status != string(expiry.StatusDismissed) {
		response.BadRequest(w, response.CodeValidationError, "status must be acknowledged or dismissed")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	err := h.expiryService.SetNotificationStatus(r.Context(), identity.BusinessID, chi.URLParam(r, "id"), expiry.NotificationStatus(statusReq.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification updated", nil)
}

// GetSettings implements ExpiryHandler.
func (h *ExpiryHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	settings, err := h.expiryService.GetSettings(r.Context(), identity.BusinessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

// UpdateSettings implements ExpiryHandler.
func (h *ExpiryHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var updateReq expiry.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	updated, err := h.expiryService.UpdateSettings(r.Context(), identity.BusinessID, updateReq)
	if err != nil {
		slog.Error("Update expiry settings service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settings updated", updated)
}
