package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIResponse describes the envelope used for error and admin responses.
// The public portfolio endpoints return their payloads bare, since that
// shape is the published contract.
type APIResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(status, payload)
}

// Invalid sends a 400 carrying per-field validation messages.
func Invalid(c echo.Context, fields map[string]string) error {
	payload := APIResponse{
		Status:  "error",
		Message: "validation failed",
		Errors:  fields,
	}
	return c.JSON(http.StatusBadRequest, payload)
}
