// Package main is the entry point for the SealCheck API server.
// It loads configuration, connects to services, builds the search index,
// sets up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sealcheck/internal/cache"
	"sealcheck/internal/config"
	"sealcheck/internal/database"
	"sealcheck/internal/handlers"
	"sealcheck/internal/middleware"
	"sealcheck/internal/router"
	"sealcheck/internal/search"
	"sealcheck/internal/storage"
	"sealcheck/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the initial data set in development (no-op if data exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey when configured. The search cache is optional:
	// without it every query just hits the in-memory engine.
	var searchCache *cache.SearchCache
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		searchCache = cache.NewSearchCache(valkeyClient, cfg.SearchCacheTTL)
	} else {
		slog.Warn("valkey not configured, search responses will not be cached")
	}

	// Initialize data stores.
	categoryStore := store.NewCategoryStore(db)
	sealTypeStore := store.NewSealTypeStore(db)
	reportStore := store.NewReportStore(db)
	articleStore := store.NewArticleStore(db)

	// Connect to S3-compatible object storage (optional; report photo
	// uploads are disabled without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient == nil {
		slog.Warn("s3 storage not configured, report photo uploads disabled")
	}

	// Build the search index synchronously so the service starts ready,
	// then keep it fresh on a schedule. A failed periodic rebuild keeps
	// the previous index in service.
	holder := search.NewHolder()
	reindexer, err := search.NewReindexer(categoryStore, holder, cfg.ReindexInterval, func(ctx context.Context) {
		searchCache.InvalidateAll(ctx)
	})
	if err != nil {
		slog.Error("failed to create reindexer", "error", err)
		os.Exit(1)
	}
	if err := reindexer.Rebuild(context.Background()); err != nil {
		slog.Error("failed to build search index", "error", err)
		os.Exit(1)
	}
	reindexer.Start()
	defer reindexer.Stop()

	// Rate limiter for report submissions.
	reportLimiter := middleware.NewRateLimiter(cfg.ReportRateLimit, cfg.ReportRateWindow)
	defer reportLimiter.Stop()

	// Create handler groups with their dependencies.
	searchHandlers := handlers.NewSearch(holder, searchCache)
	categoryHandlers := handlers.NewCategories(categoryStore)
	sealTypeHandlers := handlers.NewSealTypes(sealTypeStore)
	reportHandlers := handlers.NewReports(reportStore, storageClient)
	articleHandlers := handlers.NewArticles(articleStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(searchHandlers, categoryHandlers, sealTypeHandlers,
		reportHandlers, articleHandlers, reportLimiter, cfg.CORSOrigins)

	// Create the HTTP server with sensible timeouts. Searches are
	// sub-millisecond; the write timeout only covers photo uploads.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
