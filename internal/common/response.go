package common

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorBody is the payload inside the "error" envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data writes v under the canonical {"data": ...} envelope.
func Data(w http.ResponseWriter, status int, v any) {
	JSON(w, status, map[string]any{"data": v})
}

// JSONError renders the canonical {"error": {...}} payload.
func JSONError(w http.ResponseWriter, status int, code, message string, details any) {
	JSON(w, status, map[string]any{
		"error": ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// RenderError writes err using its AppError mapping. Errors that carry no
// AppError are masked as an internal failure.
func RenderError(w http.ResponseWriter, err error) {
	var app *AppError
	if !errors.As(err, &app) {
		app = NewAppError("INTERNAL", "internal error", http.StatusInternalServerError, err)
	}
	JSONError(w, app.HTTPStatus, app.Code, app.Message, app.Details)
}
