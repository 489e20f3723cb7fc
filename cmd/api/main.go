// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the feedback HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the record store (PostgreSQL with migrations, or in-memory).
//  4. Connect to Redis when configured and wrap the store with the list cache.
//  5. Load the token verifier when a public key is configured.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/feedback/internal/account"
	"github.com/taibuivan/feedback/internal/api"
	"github.com/taibuivan/feedback/internal/feedback"
	"github.com/taibuivan/feedback/internal/platform/config"
	"github.com/taibuivan/feedback/internal/platform/constants"
	"github.com/taibuivan/feedback/internal/platform/middleware"
	"github.com/taibuivan/feedback/internal/platform/migration"
	pgstore "github.com/taibuivan/feedback/internal/platform/postgres"
	redisstore "github.com/taibuivan/feedback/internal/platform/redis"
	"github.com/taibuivan/feedback/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.Bool("cache_enabled", cfg.RedisURL != ""),
	)

	// Root context for startup. A deadline catches misconfiguration quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	var health api.HealthDependencies

	// ── 3. Record Store ───────────────────────────────────────────────────
	var repository feedback.Repository

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if cfg.RunMigrations {
			must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		}

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.PoolSize{Max: cfg.DBMaxConns, Min: cfg.DBMinConns}, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		repository = feedback.NewPostgresRepository(pool)
		health.CheckDatabase = pgstore.Checker(pool)

	default:
		log.Warn("using_memory_store", slog.String("reason", "records are lost on restart"))
		repository = feedback.NewMemoryRepository()
	}

	// ── 4. Redis List Cache ───────────────────────────────────────────────
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, cfg.RedisPoolSize, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		repository = feedback.NewCachedRepository(repository, rdb, cfg.CacheTTL, log)
		health.CheckCache = redisstore.Checker(rdb)
	}

	// ── 5. Token Verifier ─────────────────────────────────────────────────
	var verifier middleware.TokenVerifier
	var accountHandler *account.Handler

	if cfg.JWTPubKeyPath != "" {
		tokenVerifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "load jwt public key")
		verifier = tokenVerifier
		accountHandler = account.NewHandler()
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	feedbackService := feedback.NewService(repository, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Feedback:  feedback.NewHandler(feedbackService),
		Account:   accountHandler,
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
