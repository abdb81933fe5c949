package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with. Code is a stable
// machine-readable string clients branch on; Message is for humans.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			Success: false,
			Code:    "ENCODING_ERROR",
			Message: "Failed to encode response",
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error responses
func BadRequest(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, Response{
		Success: false,
		Code:    CodeValidationError,
		Message: "Validation failed",
		Details: details,
	})
}

func Unauthorized(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func Forbidden(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusForbidden, Response{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func NotFound(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusNotFound, Response{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func Conflict(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusConflict, Response{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func TooManyRequests(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusTooManyRequests, Response{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Code:    "INTERNAL_SERVER_ERROR",
		Message: message,
	})
}
