package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/impact-effects-service/internal/adapter/http"
	"github.com/couchcryptid/impact-effects-service/internal/adapter/neo"
	"github.com/couchcryptid/impact-effects-service/internal/adapter/record"
	"github.com/couchcryptid/impact-effects-service/internal/config"
	"github.com/couchcryptid/impact-effects-service/internal/domain"
	"github.com/couchcryptid/impact-effects-service/internal/observability"
	"github.com/couchcryptid/impact-effects-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// NEO enrichment (feature-flagged via NEO_ENABLED / NASA_API_KEY).
	var catalog domain.NeoCatalog
	if cfg.NeoEnabled {
		client := neo.NewClient(cfg.NasaAPIKey, cfg.NeoTimeout, metrics, logger)
		catalog = neo.NewCachedCatalog(client, cfg.NeoCacheSize, metrics)
		metrics.NeoEnabled.Set(1)
		logger.Info("neo enrichment enabled", "cache_size", cfg.NeoCacheSize, "timeout", cfg.NeoTimeout)
	} else {
		logger.Info("neo enrichment disabled")
	}

	// Record persistence (feature-flagged via SAVE_ENABLED).
	var store *record.Store
	var recordStore domain.RecordStore
	if cfg.SaveEnabled {
		store = record.NewStore(cfg.RedisAddr, logger)
		recordStore = store
		metrics.SaveEnabled.Set(1)
		logger.Info("record persistence enabled", "redis_addr", cfg.RedisAddr, "key_prefix", cfg.SaveKeyPrefix)
	} else {
		logger.Info("record persistence disabled")
	}

	svc := service.New(catalog, recordStore, cfg.SaveKeyPrefix, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, cfg.CORSAllowedOrigins, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("record store close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
