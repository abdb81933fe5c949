package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/maintenance"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
)

type MaintenanceHandler interface {
	Info(w http.ResponseWriter, r *http.Request)
	Backup(w http.ResponseWriter, r *http.Request)
	Empty(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type MaintenanceHandlerImpl struct {
	maintenanceService maintenance.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService maintenance.MaintenanceService) MaintenanceHandler {
	return &MaintenanceHandlerImpl{maintenanceService: maintenanceService}
}

// Info implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.maintenanceService.GetInfo(r.Context())
	if err != nil {
		slog.Error("Database info service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, info)
}

// Backup implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) Backup(w http.ResponseWriter, r *http.Request) {
	var backupReq maintenance.BackupRequest

	if err := json.NewDecoder(r.Body).Decode(&backupReq); err != nil {
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	result, err := h.maintenanceService.Backup(r.Context(), backupReq)
	if err != nil {
		slog.Error("Database backup service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Database backed up", result)
}

// Empty implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) Empty(w http.ResponseWriter, r *http.Request) {
	result, err := h.maintenanceService.Empty(r.Context())
	if err != nil {
		slog.Error("Database empty service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Database emptied", result)
}

// Import implements MaintenanceHandler.
func (h *MaintenanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var importReq maintenance.ImportRequest

	if err := json.NewDecoder(r.Body).Decode(&importReq); err != nil {
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	if err := h.maintenanceService.Import(r.Context(), importReq); err != nil {
		slog.Error("Database import service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Database imported", nil)
}
