package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arundev/portfolio-api/internal/dto"
	"github.com/arundev/portfolio-api/internal/service"
)

// AdminHandler exposes the operator login and message-review endpoints.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler creates a new handler instance.
func NewAdminHandler(service *service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "username and password are required")
	}

	token, err := h.service.Login(username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "login failed")
	}

	return Success(c, http.StatusOK, "login successful", dto.AdminLoginResponse{AccessToken: token})
}

// Messages handles GET /api/admin/messages.
func (h *AdminHandler) Messages(c echo.Context) error {
	messages, err := h.service.Messages(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to load messages")
	}
	return Success(c, http.StatusOK, "messages retrieved", messages)
}
