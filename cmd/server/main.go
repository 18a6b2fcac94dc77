package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"github.com/dyondem/callsheet/internal/config"
	"github.com/dyondem/callsheet/internal/database"
	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/handlers"
	"github.com/dyondem/callsheet/internal/logging"
	"github.com/dyondem/callsheet/internal/middleware"
	"github.com/dyondem/callsheet/internal/routes"
	"github.com/dyondem/callsheet/internal/services"
	"github.com/dyondem/callsheet/internal/state"
	"github.com/dyondem/callsheet/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	// Storage adapter, selected once at startup.
	var (
		adapter      store.Adapter
		db           *gorm.DB
		dbLogHandler *logging.DBHandler
		cleanupDone  chan struct{}
	)
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		var err error
		db, err = database.Connect(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		adapter = store.NewGormStore(db)

		// ERROR+ records also land in system_logs (30-day retention).
		dbLogHandler = logging.NewDBHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			dbLogHandler,
		)))
		cleanupDone = make(chan struct{})
		logging.StartCleanup(db, cleanupDone)
	case config.BackendFile:
		adapter = store.NewFileStore(cfg.DataDir)
	default:
		slog.Error("unknown STORAGE_BACKEND", "backend", cfg.StorageBackend)
		os.Exit(1)
	}
	slog.Info("storage backend selected", "backend", cfg.StorageBackend)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Hydrate the workspace before serving anything data-dependent.
	container := state.New(adapter, cfg.WorkspaceKey)
	container.Load(context.Background())
	slog.Info("workspace hydrated")

	service := services.NewWorkspaceService(container)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))

	routes.Setup(app, routes.Handlers{
		Health:    handlers.NewHealthHandler(cfg.StorageBackend, db),
		Workspace: handlers.NewWorkspaceHandler(service),
		Role:      handlers.NewRoleHandler(service),
		People:    handlers.NewPeopleHandler(service),
		Planner:   handlers.NewPlannerHandler(service),
		Journal:   handlers.NewJournalHandler(service),
		Stage:     handlers.NewStageHandler(service),
		Project:   handlers.NewProjectHandler(service),
		Resource:  handlers.NewResourceHandler(service),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	// Drain in-flight workspace saves before tearing anything down.
	container.Wait()

	if cleanupDone != nil {
		close(cleanupDone)
	}
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
