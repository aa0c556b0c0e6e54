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

	"github.com/Devyanikhande/CivicGuard/internal/adapter/feed"
	"github.com/Devyanikhande/CivicGuard/internal/adapter/httpapi"
	"github.com/Devyanikhande/CivicGuard/internal/brief"
	"github.com/Devyanikhande/CivicGuard/internal/config"
	"github.com/Devyanikhande/CivicGuard/internal/domain"
	"github.com/Devyanikhande/CivicGuard/internal/ingest"
	"github.com/Devyanikhande/CivicGuard/internal/observability"
	"github.com/Devyanikhande/CivicGuard/internal/pipeline"
	"github.com/Devyanikhande/CivicGuard/internal/risk"
	"github.com/Devyanikhande/CivicGuard/internal/scoring"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	scoringCfg, err := scoring.LoadConfig(cfg.ScoringConfigPath)
	if err != nil {
		logger.Error("failed to load scoring config", "error", err)
		os.Exit(1)
	}

	assets, err := feed.LoadAssets(cfg.AssetsPath)
	if err != nil {
		logger.Error("failed to load asset registry", "error", err)
		os.Exit(1)
	}
	logger.Info("asset registry loaded", "assets", len(assets), "path", cfg.AssetsPath)

	coordinator := ingest.New(logger, metrics, ingest.Options{
		Workers:     cfg.IngestWorkers,
		JoinTimeout: cfg.IngestJoinTimeout,
	})
	engine := scoring.NewEngine(scoringCfg)
	composer := brief.NewComposer(
		brief.NewPrimary(nil, brief.RandomFailure(cfg.BriefFailureRate)),
		nil,
		logger,
	)

	orchestrator := pipeline.New(coordinator, engine, risk.NewModel(), composer, nil, logger, metrics)

	srv := httpapi.NewServer(cfg.HTTPAddr, orchestrator, assets, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Optional live feed: drain raw report batches from Kafka and run the
	// pipeline on each.
	var reader *feed.KafkaReader
	if cfg.KafkaEnabled {
		reader = feed.NewKafkaReader(cfg, logger)
		logger.Info("kafka feed enabled", "topic", cfg.KafkaTopic, "batch_size", cfg.FeedBatchSize)
		go runFeedLoop(ctx, reader, orchestrator, assets, cfg, logger)
	} else {
		logger.Info("kafka feed disabled, serving http analysis only")
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// runFeedLoop repeatedly fetches a batch of raw reports and runs the
// pipeline on it. Empty batches and empty-input runs are normal between
// incidents and only logged at debug level.
func runFeedLoop(ctx context.Context, reader *feed.KafkaReader, orchestrator *pipeline.Orchestrator, assets []domain.Asset, cfg *config.Config, logger *slog.Logger) {
	for ctx.Err() == nil {
		sources, err := reader.FetchBatch(ctx, cfg.FeedBatchSize)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("feed fetch failed", "error", err)
			if !sleepWithContext(ctx, cfg.FeedPollInterval) {
				return
			}
			continue
		}
		if len(sources) == 0 {
			continue
		}

		result, err := orchestrator.Run(ctx, sources, assets)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyInput) {
				logger.Debug("batch produced no usable events")
				continue
			}
			logger.Error("pipeline run failed", "error", err)
			continue
		}
		logger.Info("feed batch analyzed",
			"events", len(result.ValidatedEvents),
			"risk_score", result.RiskScore,
		)
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
