package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// SiteHandler serves the root, health, resume and analytics endpoints.
type SiteHandler struct {
	resumePath string
}

// NewSiteHandler creates a new handler instance.
func NewSiteHandler(resumePath string) *SiteHandler {
	return &SiteHandler{resumePath: resumePath}
}

// Root handles GET /.
func (h *SiteHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to Arun G's Portfolio API",
		"version": apiVersion,
	})
}

// Health handles GET /api/health.
func (h *SiteHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

// Resume handles GET /api/resume/download, serving the configured PDF.
func (h *SiteHandler) Resume(c echo.Context) error {
	if _, err := os.Stat(h.resumePath); err != nil {
		return Error(c, http.StatusNotFound, "resume file not found")
	}
	return c.Attachment(h.resumePath, "Arun_G_Resume.pdf")
}

// Analytics handles GET /api/analytics/views. The payload is a static
// stub; real analytics would come from an external service.
func (h *SiteHandler) Analytics(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"total_views":     1234,
		"unique_visitors": 567,
		"popular_projects": []map[string]any{
			{"title": "Amazon Clone", "views": 234},
			{"title": "Movie Discovery App", "views": 189},
			{"title": "Weather Forecast App", "views": 145},
		},
	})
}
