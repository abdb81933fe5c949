package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/timeclock"
	"github.com/auraswift/pos-backend-go/internal/handler/http/middleware"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
)

type TimeclockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	Active(w http.ResponseWriter, r *http.Request)
}

type TimeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &TimeclockHandlerImpl{timeclockService: timeclockService}
}

// ClockIn implements TimeclockHandler. The body is optional; it only
// carries the manager override flag.
func (h *TimeclockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq timeclock.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil && err != io.EOF {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	result, err := h.timeclockService.ClockIn(r.Context(), identity.UserID, identity.BusinessID, clockInReq)
	if err != nil {
		slog.Warn("ClockIn refused", "user_id", identity.UserID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in", result)
}

// ClockOut implements TimeclockHandler.
func (h *TimeclockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	result, err := h.timeclockService.ClockOut(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", result)
}

// StartBreak implements TimeclockHandler.
func (h *TimeclockHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	result, err := h.timeclockService.StartBreak(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Break started", result)
}

// EndBreak implements TimeclockHandler.
func (h *TimeclockHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	result, err := h.timeclockService.EndBreak(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Break ended", result)
}

// Active implements TimeclockHandler. Responds success with null data when
// the caller is not clocked in.
func (h *TimeclockHandlerImpl) Active(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	result, err := h.timeclockService.GetActive(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
