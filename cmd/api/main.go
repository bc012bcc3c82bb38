package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledger-explorer/config"
	httpHandler "ledger-explorer/internal/adapter/http/handler"
	"ledger-explorer/internal/adapter/ledgerapi"
	redisStorage "ledger-explorer/internal/adapter/storage/redis"
	"ledger-explorer/internal/core/ports"
	"ledger-explorer/internal/dispatch"
	"ledger-explorer/internal/render"
	"ledger-explorer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("ledger_api", cfg.Ledger.BaseURL).
		Msg("Starting Ledger Explorer")

	ctx := context.Background()

	// Initialize Redis client (page cache + rate limiting)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Upstream ledger API client
	ledgerClient := ledgerapi.NewClient(
		cfg.Ledger.BaseURL,
		cfg.Ledger.Timeout,
		log,
		ledgerapi.WithMaxRetries(cfg.Ledger.MaxRetries),
	)

	// Rendering pipeline
	tables := render.NewTableRenderer(cfg.Ledger.PageLimit, log)
	surfaces := render.NewSurfaceMap()
	chartRenderer := render.NewChartJSRenderer(log)
	chart := render.NewChartController(ledgerClient, chartRenderer, surfaces, cfg.Ledger.HistoryLimit, log)
	defer chart.DestroyChart()

	// Payload dispatcher
	interceptor := dispatch.NewDispatcher(tables, log)

	// Redis-backed stores
	pageCache := redisStorage.NewPageCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Health checkers
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledgerClient,
		Fetcher:        ledgerClient,
		Tables:         tables,
		Chart:          chart,
		Surfaces:       surfaces,
		Interceptor:    interceptor,
		PageCache:      pageCache,
		CacheTTL:       cfg.Ledger.CacheTTL,
		PageLimit:      cfg.Ledger.PageLimit,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{ledgerClient, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
