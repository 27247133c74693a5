package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Raymond9734/customer-records-backend/internal/config"
	"github.com/Raymond9734/customer-records-backend/internal/db"
	"github.com/Raymond9734/customer-records-backend/internal/handler"
	"github.com/Raymond9734/customer-records-backend/internal/idempotency"
	"github.com/Raymond9734/customer-records-backend/internal/observability"
	"github.com/Raymond9734/customer-records-backend/internal/repository"
	"github.com/Raymond9734/customer-records-backend/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply database migrations and exit")
	flag.Parse()

	// .env is optional; real environment variables win over it.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("failed to read .env", slog.String("error", envErr.Error()))
	}

	if err := run(cfg, logger, *migrateOnly); err != nil {
		logger.Error("customer records API stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, migrateOnly bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting customer records API", slog.String("env", cfg.Env))

	if cfg.Database.Migrate || migrateOnly {
		version, err := db.Migrate(cfg.Database.URL())
		if err != nil {
			return err
		}
		logger.Info("database schema up to date", slog.Uint64("version", uint64(version)))
	}
	if migrateOnly {
		return nil
	}

	database, err := db.New(ctx, db.Config{DSN: cfg.Database.DSN()})
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("connected to database")

	var store *idempotency.Store
	if cfg.Redis.URL != "" {
		client, err := idempotency.NewRedisClient(ctx, cfg.Redis.URL, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		store = idempotency.NewStore(client, cfg.Redis.IdempotencyTTL)
	} else {
		logger.Info("REDIS_URL not set, idempotent replay disabled")
	}

	customerRepo := repository.NewCustomerRepository(database.DB)
	addressRepo := repository.NewAddressRepository(database.DB)

	router := handler.NewRouter(handler.RouterConfig{
		Customers:      service.NewCustomerService(customerRepo, logger),
		Addresses:      service.NewAddressService(addressRepo, logger),
		Database:       database,
		Idempotency:    store,
		Metrics:        observability.NewMetrics(),
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window,
		RequestTimeout: cfg.API.RequestTimeout,
		Production:     cfg.IsProduction(),
	})

	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("API server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
