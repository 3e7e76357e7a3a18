package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monjoel_backend/internal/adapters/storage"
	"monjoel_backend/internal/contact"
	"monjoel_backend/internal/diagnostic"
	apphttp "monjoel_backend/internal/http"
	"monjoel_backend/internal/http/router"
	"monjoel_backend/internal/notification"
	"monjoel_backend/internal/partners"
	"monjoel_backend/internal/pricebook"
	"monjoel_backend/internal/pricing"
	"monjoel_backend/internal/scheduler"
	"monjoel_backend/internal/settings"
	"monjoel_backend/platform/config"
	"monjoel_backend/platform/db"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/logger"
	"monjoel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	taskClient, closeTaskClient := initTaskClient(cfg, log)
	if closeTaskClient != nil {
		defer closeTaskClient()
	}

	notificationModule := notification.New(taskClient, log)
	notificationModule.RegisterHandlers(eventBus)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Photo uploads are optional; the diagnostic flow works without MinIO.
	var objectStore storage.ObjectStore
	if cfg.IsMinIOEnabled() {
		storageSvc, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure diagnostic photos bucket", 5, 2*time.Second, func() error {
			return storageSvc.EnsureBucketExists(ctx, cfg.GetMinioBucketDiagnosticPhotos())
		}); err != nil {
			log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketDiagnosticPhotos())
			panic("failed to ensure storage bucket exists: " + err.Error())
		}
		objectStore = storageSvc
		log.Info("storage service initialized", "photosBucket", cfg.GetMinioBucketDiagnosticPhotos())
	} else {
		log.Warn("MinIO not configured; photo uploads disabled")
	}

	// The pricebook module owns the catalog provider the pricing engine reads.
	pricebookModule := pricebook.NewModule(pool, log, val)
	priceEngine := pricing.New(pricebookModule.Catalog())

	diagnosticModule := diagnostic.NewModule(pool, priceEngine, eventBus, objectStore, cfg.GetMinioBucketDiagnosticPhotos(), val)
	contactModule := contact.NewModule(pool, eventBus, val)
	partnersModule := partners.NewModule(pool, eventBus, val)
	settingsModule := settings.NewModule(pool, val)

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			diagnosticModule,
			contactModule,
			partnersModule,
			pricebookModule,
			settingsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initTaskClient(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.NotificationEnqueuer, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; team notifications disabled")
		return nil, nil
	}

	taskClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize task queue client", "error", err)
		return nil, nil
	}

	return taskClient, func() {
		_ = taskClient.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
