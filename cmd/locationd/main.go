package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/cloudbread0714/tayo-taxi-user/internal/adapter/http"
	kafkaadapter "github.com/cloudbread0714/tayo-taxi-user/internal/adapter/kafka"
	"github.com/cloudbread0714/tayo-taxi-user/internal/adapter/mapbox"
	"github.com/cloudbread0714/tayo-taxi-user/internal/config"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
	"github.com/cloudbread0714/tayo-taxi-user/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat).With("service", "tayo-location")
	slog.SetDefault(logger)
	metrics := observability.NewMetrics()

	client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, mapbox.Options{
		Language:          cfg.MapboxLanguage,
		Country:           cfg.MapboxCountry,
		RequestsPerSecond: cfg.MapboxRPS,
	}, metrics, logger)
	geocoder := mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
	logger.Info("mapbox geocoding configured",
		"cache_size", cfg.MapboxCacheSize,
		"timeout", cfg.MapboxTimeout,
		"language", cfg.MapboxLanguage,
		"country", cfg.MapboxCountry,
	)

	writer := kafkaadapter.NewHandoffWriter(cfg, logger)
	flow := pipeline.NewFlow(geocoder, writer, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, writer, httpadapter.NewTripHandler(flow, logger), logger)

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
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
