package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arundev/portfolio-api/internal/dto"
	"github.com/arundev/portfolio-api/internal/service"
)

// ContactHandler accepts contact-form submissions.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact. The notification is scheduled via a
// response-after hook so it only enters the queue once the acknowledgment
// has been written to the client.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}

	resp, schedule, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return Invalid(c, verr.Fields)
		}
		return Error(c, http.StatusInternalServerError, "Failed to process contact form. Please try again.")
	}

	if schedule != nil {
		c.Response().After(schedule)
	}
	return c.JSON(http.StatusOK, resp)
}
