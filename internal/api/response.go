package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/service"
)

// ErrorDetail is the error half of the response envelope.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Envelope is the standard response shape: {success, data?, error?}.
type Envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// OK sends a success envelope.
func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// Error sends an error envelope.
func Error(c echo.Context, status int, code, message string) error {
	return c.JSON(status, Envelope{
		Error: &ErrorDetail{Code: code, Message: message},
	})
}

// ErrorWithDetails sends an error envelope with a details payload.
func ErrorWithDetails(c echo.Context, status int, code, message string, details any) error {
	return c.JSON(status, Envelope{
		Error: &ErrorDetail{Code: code, Message: message, Details: details},
	})
}

// mapServiceError translates a service error into an HTTP error response.
// Conflicts map to 400, matching the registration contract.
func mapServiceError(c echo.Context, err error) error {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		return Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrBadRequest), errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	return Error(c, status, svcErr.Code, svcErr.Message)
}
