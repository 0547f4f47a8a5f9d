package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/arundev/portfolio-api/internal/auth"
	"github.com/arundev/portfolio-api/internal/catalog"
	"github.com/arundev/portfolio-api/internal/config"
	"github.com/arundev/portfolio-api/internal/handler"
	"github.com/arundev/portfolio-api/internal/mailer"
	middlewarepkg "github.com/arundev/portfolio-api/internal/middleware"
	"github.com/arundev/portfolio-api/internal/router"
	"github.com/arundev/portfolio-api/internal/service"
	"github.com/arundev/portfolio-api/internal/store"
	"github.com/arundev/portfolio-api/internal/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	cat := catalog.New()
	messageStore := store.NewFileStore(cfg.ContactFile)
	runner := task.NewRunner(cfg.TaskQueueSize)

	var notifier service.Notifier
	if m, err := mailer.New(cfg.SMTP, cfg.NotifyTo); err != nil {
		log.Printf("mail notifications disabled: %v", err)
	} else {
		notifier = m
	}

	portfolioService := service.NewPortfolioService(cat)
	contactService := service.NewContactService(messageStore, notifier, runner)
	adminService := service.NewAdminService(messageStore, jwtManager, cfg.AdminUser, cfg.AdminPasswordHash)

	handlers := router.Handlers{
		Site:      handler.NewSiteHandler(cfg.ResumeFile),
		Portfolio: handler.NewPortfolioHandler(portfolioService),
		Contact:   handler.NewContactHandler(contactService),
		Admin:     handler.NewAdminHandler(adminService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	drainCtx, drainCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer drainCancel()

	if err := runner.Close(drainCtx); err != nil {
		log.Printf("background tasks not drained: %v", err)
	}
}
