package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/handler/http/middleware"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ValidateClockIn(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// List implements ScheduleHandler. Defaults to the coming week when no range
// is given.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	now := time.Now()
	from := now.AddDate(0, 0, -1).Unix()
	to := now.AddDate(0, 0, 7).Unix()
	if v := r.URL.Query().Get("from"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			from = parsed
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			to = parsed
		}
	}

	schedules, err := h.scheduleService.GetByBusiness(r.Context(), identity.BusinessID, from, to)
	if err != nil {
		slog.Error("List schedules service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedules)
}

// ListMine implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	schedules, err := h.scheduleService.GetByStaff(r.Context(), identity.BusinessID, identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedules)
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq schedule.CreateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create schedule decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	created, err := h.scheduleService.Create(r.Context(), identity.BusinessID, identity.UserID, createReq)
	if err != nil {
		slog.Error("Create schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedule created successfully", created)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq schedule.UpdateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update schedule decode error", "error", err)
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	identity, _ := middleware.IdentityFromContext(r.Context())
	updated, err := h.scheduleService.Update(r.Context(), identity.BusinessID, updateReq)
	if err != nil {
		slog.Error("Update schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule updated successfully", updated)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	if err := h.scheduleService.Delete(r.Context(), identity.BusinessID, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Schedule deleted successfully", nil)
}

// ValidateClockIn implements ScheduleHandler. Read-only preview of the
// decision the clock-in and shift-start paths will make.
func (h *ScheduleHandlerImpl) ValidateClockIn(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	validation, err := h.scheduleService.ValidateClockIn(r.Context(), identity.UserID, identity.BusinessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, validation)
}
