package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arundev/portfolio-api/internal/catalog"
	"github.com/arundev/portfolio-api/internal/dto"
	"github.com/arundev/portfolio-api/internal/service"
)

// PortfolioHandler exposes the read-side portfolio endpoints.
type PortfolioHandler struct {
	service *service.PortfolioService
}

// NewPortfolioHandler creates a new handler instance.
func NewPortfolioHandler(service *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// PersonalInfo handles GET /api/personal-info.
func (h *PortfolioHandler) PersonalInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.PersonalInfo())
}

// Stats handles GET /api/stats.
func (h *PortfolioHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Stats())
}

// ListProjects handles GET /api/projects with an optional featured filter.
func (h *PortfolioHandler) ListProjects(c echo.Context) error {
	var featured *bool
	if raw := strings.TrimSpace(c.QueryParam("featured")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid featured value (use true or false)")
		}
		featured = &value
	}
	return c.JSON(http.StatusOK, h.service.ListProjects(featured))
}

// GetProject handles GET /api/projects/:id.
func (h *PortfolioHandler) GetProject(c echo.Context) error {
	project, err := h.service.Project(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Error(c, http.StatusNotFound, "project not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load project")
	}
	return c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/projects. The created project lives in
// memory only and disappears on restart.
func (h *PortfolioHandler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	project := h.service.CreateProject(req)
	return c.JSON(http.StatusCreated, project)
}

// ListSkills handles GET /api/skills with an optional category filter.
func (h *PortfolioHandler) ListSkills(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	return c.JSON(http.StatusOK, h.service.ListSkills(category))
}

// SkillCategories handles GET /api/skills/categories.
func (h *PortfolioHandler) SkillCategories(c echo.Context) error {
	categories := h.service.SkillCategories()
	return c.JSON(http.StatusOK, map[string][]string{"categories": categories})
}

// ListExperiences handles GET /api/experiences with an optional type filter.
func (h *PortfolioHandler) ListExperiences(c echo.Context) error {
	typ := strings.TrimSpace(c.QueryParam("type"))
	return c.JSON(http.StatusOK, h.service.ListExperiences(typ))
}

// GetExperience handles GET /api/experiences/:id.
func (h *PortfolioHandler) GetExperience(c echo.Context) error {
	experience, err := h.service.Experience(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Error(c, http.StatusNotFound, "experience not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load experience")
	}
	return c.JSON(http.StatusOK, experience)
}

// Services handles GET /api/services.
func (h *PortfolioHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Services())
}

// FAQ handles GET /api/faq.
func (h *PortfolioHandler) FAQ(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.FAQ())
}

// Search handles GET /api/search. The category parameter is accepted for
// compatibility but does not narrow results.
func (h *PortfolioHandler) Search(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Search(c.QueryParam("q")))
}
