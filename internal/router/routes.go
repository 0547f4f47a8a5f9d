package router

import (
	"github.com/labstack/echo/v4"

	"github.com/arundev/portfolio-api/internal/auth"
	"github.com/arundev/portfolio-api/internal/config"
	"github.com/arundev/portfolio-api/internal/handler"
	middlewarepkg "github.com/arundev/portfolio-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Site      *handler.SiteHandler
	Portfolio *handler.PortfolioHandler
	Contact   *handler.ContactHandler
	Admin     *handler.AdminHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/", handlers.Site.Root)
	e.GET("/api/health", handlers.Site.Health)

	e.GET("/api/personal-info", handlers.Portfolio.PersonalInfo)
	e.GET("/api/stats", handlers.Portfolio.Stats)

	e.GET("/api/projects", handlers.Portfolio.ListProjects)
	e.GET("/api/projects/:id", handlers.Portfolio.GetProject)
	e.POST("/api/projects", handlers.Portfolio.CreateProject)

	e.GET("/api/skills", handlers.Portfolio.ListSkills)
	e.GET("/api/skills/categories", handlers.Portfolio.SkillCategories)

	e.GET("/api/experiences", handlers.Portfolio.ListExperiences)
	e.GET("/api/experiences/:id", handlers.Portfolio.GetExperience)

	e.GET("/api/services", handlers.Portfolio.Services)
	e.GET("/api/faq", handlers.Portfolio.FAQ)
	e.GET("/api/search", handlers.Portfolio.Search)

	e.POST("/api/contact", handlers.Contact.Submit, middlewarepkg.ContactRateLimiter(cfg.RateLimitContact))

	e.GET("/api/resume/download", handlers.Site.Resume)
	e.GET("/api/analytics/views", handlers.Site.Analytics)

	e.POST("/api/admin/login", handlers.Admin.Login)

	admin := e.Group("/api/admin", middlewarepkg.JWT(jwtManager))
	admin.GET("/messages", handlers.Admin.Messages)
}
