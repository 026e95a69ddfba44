package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-records-api/api/swagger"
	"github.com/noah-isme/campus-records-api/internal/repository"
	"github.com/noah-isme/campus-records-api/internal/router"
	"github.com/noah-isme/campus-records-api/internal/service"
	"github.com/noah-isme/campus-records-api/pkg/config"
	"github.com/noah-isme/campus-records-api/pkg/database"
	"github.com/noah-isme/campus-records-api/pkg/logger"
	"github.com/noah-isme/campus-records-api/pkg/storage"
)

// @title Campus Records API
// @version 1.0.0
// @description Faculty and student records with profile uploads
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Error("server stopped with error", zap.Error(err))
		_ = logr.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logr.Warn("close database", zap.Error(err))
		}
	}()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		return err
	}

	uploads, err := newUploadStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init upload storage: %w", err)
	}

	engine := router.New(router.Dependencies{
		Config:  cfg,
		DB:      db,
		Uploads: uploads,
		Logger:  logr,
		Metrics: service.NewMetricsService(),
	})

	return serve(ctx, cfg, logr, db, engine)
}

func newUploadStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Uploads.Backend {
	case config.UploadBackendMinIO:
		return storage.NewMinIOStorage(ctx, cfg.Uploads.MinIO)
	case config.UploadBackendLocal, "":
		return storage.NewLocalStorage(cfg.Uploads.Dir)
	default:
		return nil, fmt.Errorf("unsupported upload backend %q", cfg.Uploads.Backend)
	}
}

func serve(ctx context.Context, cfg *config.Config, logr *zap.Logger, db *sqlx.DB, handler http.Handler) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "db_driver", db.DriverName(), "upload_backend", cfg.Uploads.Backend)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		logr.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logr.Info("server stopped")
	return nil
}
