package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/settings"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	value, err := h.settingsService.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]string{"value": value})
}

// Set implements SettingsHandler.
func (h *SettingsHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var setReq struct {
		Value   string `json:"value"`
		Encrypt bool   `json:"encrypt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		response.BadRequest(w, response.CodeValidationError, "Invalid request format")
		return
	}

	key := chi.URLParam(r, "key")
	if err := h.settingsService.Set(r.Context(), key, setReq.Value, setReq.Encrypt); err != nil {
		slog.Error("Set setting service error", "key", key, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Setting saved", nil)
}

// Delete implements SettingsHandler.
func (h *SettingsHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsService.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Setting deleted", nil)
}
