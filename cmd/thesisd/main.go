package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/noetic-labs/thesisd/internal/config"
	"github.com/noetic-labs/thesisd/internal/export"
	"github.com/noetic-labs/thesisd/internal/health"
	"github.com/noetic-labs/thesisd/internal/httpapi"
	"github.com/noetic-labs/thesisd/internal/metrics"
	"github.com/noetic-labs/thesisd/internal/refdata"
	"github.com/noetic-labs/thesisd/internal/thesis"
)

func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	if os.Getenv("ENVIRONMENT") == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = logger

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err == nil {
		zerolog.SetGlobalLevel(level)
	}

	logger.Info().
		Str("environment", cfg.Environment).
		Int("http_port", cfg.HTTPPort).
		Str("dataset_path", cfg.DatasetPath).
		Msg("starting thesisd")

	// Reference data: embedded dataset unless a path override is set
	var dataset *refdata.Dataset
	if cfg.DatasetPath != "" {
		dataset, err = refdata.Load(cfg.DatasetPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("failed to load dataset")
		}
		logger.Info().Str("path", cfg.DatasetPath).Msg("dataset loaded from file")
	} else {
		dataset = refdata.Default()
	}

	charts := thesis.DefaultCharts(dataset)
	insights := thesis.DefaultInsights()
	catalog := thesis.NewCatalog(dataset, charts)
	builder := thesis.NewPlanBuilder(dataset, charts, insights, nil)

	metricsCollector := metrics.New()

	checker := health.NewChecker(logger)
	checker.Register("dataset", func(ctx context.Context) health.Status {
		if err := dataset.Validate(); err != nil {
			return health.StatusDown
		}
		return health.StatusOK
	})
	checker.Register("templates", func(ctx context.Context) health.Status {
		if len(thesis.Templates()) == 0 {
			return health.StatusDown
		}
		return health.StatusOK
	})

	composer := export.NewComposer(charts)
	exporter := export.NewExporter(builder, composer, metricsCollector, cfg.ArtifactCacheSize, logger)

	handlers := httpapi.NewHandlers(exporter, catalog, builder, checker, cfg.ExportTimeout, logger)

	server := httpapi.NewServer(httpapi.ServerConfig{
		ListenAddr:   fmt.Sprintf(":%d", cfg.HTTPPort),
		CORSOrigins:  cfg.CORSOriginList(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		RateLimit: httpapi.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		},
	}, handlers, metricsCollector, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down gracefully")
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("http server error")
		}
		return
	}

	done := make(chan struct{})
	go func() {
		if err := server.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("http server shutdown error")
		}
		close(done)
	}()

	select {
	case <-done:
		logger.Info().Msg("thesisd stopped")
	case <-time.After(15 * time.Second):
		logger.Warn().Msg("forced shutdown after timeout")
	}
}
