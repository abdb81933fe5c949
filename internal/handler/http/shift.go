package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/handler/http/middleware"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Active(w http.ResponseWriter, r *http.Request)
	TodaySchedule(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	HourlyStats(w http.ResponseWriter, r *http.Request)
	DrawerBalance(w http.ResponseWriter, r *http.Request)
	RecordTransaction(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Start implements ShiftHandler.
func (h *ShiftHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var startReq shift.StartShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&startReq); err != nil {
		slog.Error("Start shift decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	started, err := h.shiftService.Start(r.Context(), identity.UserID, identity.BusinessID, startReq)
	if err != nil {
		slog.Warn("Start shift refused", "user_id", identity.UserID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift started", started)
}

// End implements ShiftHandler.
func (h *ShiftHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	var endReq shift.EndShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&endReq); err != nil {
		slog.Error("End shift decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	ended, err := h.shiftService.End(r.Context(), identity.UserID, endReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift ended", ended)
}

// Active implements ShiftHandler. Responds success with null data when the
// caller has no live shift.
func (h *ShiftHandlerImpl) Active(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	active, err := h.shiftService.GetActive(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, active)
}

// TodaySchedule implements ShiftHandler.
func (h *ShiftHandlerImpl) TodaySchedule(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	today, err := h.shiftService.GetTodaySchedule(r.Context(), identity.UserID, identity.BusinessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, today)
}

// Stats implements ShiftHandler.
func (h *ShiftHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	stats, err := h.shiftService.GetStats(r.Context(), identity.BusinessID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// HourlyStats implements ShiftHandler.
func (h *ShiftHandlerImpl) HourlyStats(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	stats, err := h.shiftService.GetHourlyStats(r.Context(), identity.BusinessID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// DrawerBalance implements ShiftHandler.
func (h *ShiftHandlerImpl) DrawerBalance(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	balance, err := h.shiftService.GetCashDrawerBalance(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}

// RecordTransaction implements ShiftHandler.
func (h *ShiftHandlerImpl) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var txReq shift.RecordTransactionRequest

	if err := json.NewDecoder(r.Body).Decode(&txReq); err != nil {
		slog.Error("Record transaction decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	updated, err := h.shiftService.RecordTransaction(r.Context(), identity.UserID, txReq)
	if err != nil {
		slog.Error("Record transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Transaction recorded", updated)
}
