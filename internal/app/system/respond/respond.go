// Package respond writes JSON responses and maps the service error
// taxonomy onto HTTP statuses: validation 400, forbidden 403, not
// found 404, conflict 400 (wire-compatible with the original surface),
// adapter failure 500.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorBody is the JSON shape for every error response.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// BadRequest reports missing or malformed input.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// Forbidden reports an insufficient role.
func Forbidden(w http.ResponseWriter, msg string) {
	Error(w, http.StatusForbidden, msg)
}

// NotFound reports an absent entity or one outside the request scope.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// Conflict reports a state conflict such as a duplicate membership.
// The wire status is 400 to match the original surface.
func Conflict(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// ErrorLogger pairs server-error responses with structured logging so
// handlers never swallow an adapter failure silently.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger writing through the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// ServerError logs the failure with request context and writes a 500.
// The client sees a generic message; details stay in the log.
func (el *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	el.log.Error(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	Error(w, http.StatusInternalServerError, "internal error")
}

// BadRequestErr logs a malformed request at debug level and writes a 400
// with the user-facing message.
func (el *ErrorLogger) BadRequestErr(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	el.log.Debug(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	BadRequest(w, userMsg)
}
