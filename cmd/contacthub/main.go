package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"contacthub/internal/config"
	handlers "contacthub/internal/http"
	custommw "contacthub/internal/middleware"
	"contacthub/internal/service"
	"contacthub/internal/store"
	"contacthub/shared/logger"
	"contacthub/shared/middleware"
)

func main() {
	logrusLogger := logger.Init("contacthub")

	cfg, err := config.Load()
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to load config")
	}

	var contactStore store.ContactStore
	var taskStore store.TaskStore
	switch cfg.Storage.Driver {
	case "json":
		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			logrusLogger.WithError(err).Fatal("failed to create data directory")
		}
		contactStore = store.NewJSONContactStore(filepath.Join(cfg.Storage.DataDir, "contacts.json"))
		taskStore = store.NewJSONTaskStore(filepath.Join(cfg.Storage.DataDir, "tasks.json"))
	case "postgres":
		db, err := store.OpenPostgres(cfg.Storage.DB.DSN())
		if err != nil {
			logrusLogger.WithError(err).Fatal("failed to connect to database")
		}
		defer db.Close()
		contactStore = store.NewPostgresContactStore(db)
		taskStore = store.NewPostgresTaskStore(db)
	default:
		logrusLogger.Fatal("unsupported storage driver: " + cfg.Storage.Driver)
	}

	contactService := service.NewContactService(contactStore, logrusLogger)
	taskService := service.NewTaskService(taskStore, logrusLogger)

	contactHandler := handlers.NewContactHandler(contactService, taskService, logrusLogger)
	taskHandler := handlers.NewTaskHandler(taskService, logrusLogger)

	mux := handlers.NewRouter(contactHandler, taskHandler)
	mux.Handle("GET /metrics", custommw.MetricsHandler())

	// Middleware chain; request-id must be outermost so the request logger
	// sees the id.
	var handler http.Handler = custommw.SecurityHeadersMiddleware(mux)
	if cfg.CSRFProtection {
		handler = custommw.CSRFMiddleware(handler)
	}
	handler = custommw.MetricsMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logrusLogger.WithField("port", cfg.HTTPPort).Info("contacthub server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrusLogger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrusLogger.Info("shutting down contacthub server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrusLogger.WithError(err).Error("graceful shutdown failed")
	}
}
