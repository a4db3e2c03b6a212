// Package respond provides utilities for sending HTTP responses in the API's
// JSON envelope format. It includes error handling with sanitization to
// prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"blog-backend/internal/common/pagination"
)

// envelope is the wire shape of every API response.
// Data is always present: an error response carries data: null.
type envelope struct {
	Success bool                 `json:"success"`
	Data    any                  `json:"data"`
	Error   string               `json:"error,omitempty"`
	Meta    *pagination.Metadata `json:"meta,omitempty"`
}

// JSON writes a JSON response with the given status code and body.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent, can only log
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Success writes a success envelope with the given data.
func Success(w http.ResponseWriter, code int, data any) {
	JSON(w, code, envelope{Success: true, Data: data})
}

// SuccessWithMeta writes a success envelope with data and pagination metadata.
func SuccessWithMeta(w http.ResponseWriter, code int, data any, meta pagination.Metadata) {
	JSON(w, code, envelope{Success: true, Data: data, Meta: &meta})
}

// Error writes an error envelope with the given status code and error message.
// The data field is null in error responses.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, envelope{Success: false, Error: err.Error()})
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (e.g., database errors) are returned as "internal server error",
// with details logged for debugging. Safe errors (validation errors) are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	// Messages users may see verbatim: validation and lookup failures.
	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"must be",
		"cannot be",
		"too long",
		"too short",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 5xx is always treated as internal
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		Error(w, code, err)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, envelope{Success: false, Error: "internal server error"})
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// AppSafeError handles errors with AppError support.
// If the error is an AppError, it returns the user message and logs the
// internal error. Otherwise it falls back to SafeError behavior.
func AppSafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, envelope{Success: false, Error: appErr.UserMsg})
		return
	}

	SafeError(w, code, err)
}
