// Package resp writes uniform JSON API responses.
//
// Success responses carry the payload directly; failure responses carry an
// Exception envelope with a business code and message.
package resp

import (
	"encoding/json"
	"net/http"

	"github.com/aigram-labs/aigram/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with a custom status code. A bare
// string payload is wrapped as {"message": ...}.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var responseData any
	if len(data) > 0 {
		responseData = data[0]
	}

	if msg, ok := responseData.(string); ok {
		responseData = map[string]any{"message": msg}
	}
	if responseData == nil {
		responseData = map[string]any{"message": "ok"}
	}

	writeJSON(w, statusCode, responseData)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer(ecode.Text(ecode.ServerErr))
	}

	status := r.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	code := r.Code
	if code == 0 {
		code = ecode.RequestErr
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	writeJSON(w, status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	})
}

// BadRequest builds a 400 exception.
func BadRequest(message string, errs ...any) *Exception {
	return newException(http.StatusBadRequest, ecode.RequestErr, message, errs...)
}

// NotFound builds a 404 exception.
func NotFound(message string, errs ...any) *Exception {
	return newException(http.StatusNotFound, ecode.NotFound, message, errs...)
}

// InternalServer builds a 500 exception.
func InternalServer(message string, errs ...any) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServerErr, message, errs...)
}

func newException(status, code int, message string, errs ...any) *Exception {
	var errors any
	if len(errs) > 0 {
		errors = errs[0]
	}
	return &Exception{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  errors,
	}
}

// writeJSON writes the response with the given status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
