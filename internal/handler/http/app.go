package http

import (
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
)

type AppHandler interface {
	Version(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type AppHandlerImpl struct {
	version string
	env     string
}

func NewAppHandler(version string, env string) AppHandler {
	return &AppHandlerImpl{version: version, env: env}
}

// Version implements AppHandler.
func (h *AppHandlerImpl) Version(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"version": h.version,
		"env":     h.env,
	})
}

// Health implements AppHandler.
func (h *AppHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"})
}
