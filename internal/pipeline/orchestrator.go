// Package pipeline sequences one full analysis cycle: ingest, score, compact
// context, compute risk, generate the brief, and recommend actions.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
	"github.com/Devyanikhande/CivicGuard/internal/memory"
	"github.com/Devyanikhande/CivicGuard/internal/observability"
	"github.com/Devyanikhande/CivicGuard/internal/recommend"
)

// Ingestor merges per-source raw inputs into event records, reporting
// per-source failures without aborting.
type Ingestor interface {
	Ingest(ctx context.Context, sources map[string][]domain.RawInput) ([]domain.EventRecord, []domain.SourceIngestionError)
}

// Scorer attaches validation and priority to an event.
type Scorer interface {
	Score(event domain.EventRecord, now time.Time) (domain.EventRecord, error)
}

// RiskScorer computes the composite risk scalar from validated signals.
type RiskScorer interface {
	Score(confidence, severity float64) float64
}

// BriefComposer produces the situation brief, reporting whether the
// fallback path was taken. It must not fail.
type BriefComposer interface {
	Compose(ctx context.Context, events []domain.EventRecord, assetContext string) (string, bool)
}

// Orchestrator runs the request/response decision cycle. Everything after
// ingestion executes sequentially and touches no shared mutable state.
type Orchestrator struct {
	ingestor Ingestor
	scorer   Scorer
	risk     RiskScorer
	composer BriefComposer
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
}

// New creates an Orchestrator. A nil clock means real time.
func New(ingestor Ingestor, scorer Scorer, risk RiskScorer, composer BriefComposer, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Orchestrator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Orchestrator{
		ingestor: ingestor,
		scorer:   scorer,
		risk:     risk,
		composer: composer,
		clock:    clock,
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness returns nil once the orchestrator has completed at least one
// run, or an error describing why the service is not yet ready.
func (o *Orchestrator) CheckReadiness(_ context.Context) error {
	if !o.ready.Load() {
		return errors.New("pipeline has not completed any runs yet")
	}
	return nil
}

// Run executes one full cycle over the given sources and asset registry.
// It fails with domain.ErrEmptyInput only when no event survives ingestion
// and validation; every other component failure degrades locally.
func (o *Orchestrator) Run(ctx context.Context, sources map[string][]domain.RawInput, assets []domain.Asset) (domain.PipelineResult, error) {
	start := time.Now()

	events, srcErrs := o.ingestor.Ingest(ctx, sources)
	for _, e := range srcErrs {
		o.logger.Warn("source failed, continuing with remaining sources",
			"source", e.Source, "error", e.Err)
	}
	o.metrics.EventsIngested.Add(float64(len(events)))

	validated := o.scoreAll(events)
	if len(validated) == 0 {
		return domain.PipelineResult{}, domain.ErrEmptyInput
	}

	bank := memory.NewBank(assets)
	primary := primaryEvent(validated)
	assetContext := bank.CompactContext(primary.Geo, memory.DefaultNearest)

	riskScore := o.risk.Score(
		primary.Validation.EvidenceConfidence,
		primary.Validation.Severity,
	)

	briefText, fellBack := o.composer.Compose(ctx, validated, assetContext)
	if fellBack {
		o.metrics.BriefFallbacks.Inc()
	}

	plan := recommend.Plan(primary, bank)

	o.metrics.PipelineRuns.Inc()
	o.metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	o.metrics.LastRiskScore.Set(riskScore)
	o.ready.Store(true)

	o.logger.Info("pipeline run complete",
		"events", len(validated),
		"source_failures", len(srcErrs),
		"risk_score", riskScore,
		"brief_fallback", fellBack,
		"priority", primary.Priority,
	)

	return domain.PipelineResult{
		Brief:           briefText,
		RiskScore:       riskScore,
		Actions:         plan,
		ValidatedEvents: validated,
	}, nil
}

// scoreAll validates every event against the current time, skipping events
// whose timestamps cannot be parsed.
func (o *Orchestrator) scoreAll(events []domain.EventRecord) []domain.EventRecord {
	now := o.clock.Now().UTC()
	validated := make([]domain.EventRecord, 0, len(events))
	for _, e := range events {
		scored, err := o.scorer.Score(e, now)
		if err != nil {
			o.logger.Warn("skipping event with unusable timestamp",
				"event_id", e.EventID, "source", e.Source, "error", err)
			o.metrics.ScoringDropped.Inc()
			continue
		}
		validated = append(validated, scored)
	}
	return validated
}

// primaryEvent designates the run's representative event: the single event
// with maximum evidence confidence, ties broken by merged order. Context,
// risk, and the action plan all derive from it.
func primaryEvent(validated []domain.EventRecord) domain.EventRecord {
	top := validated[0]
	for _, e := range validated[1:] {
		if e.Validation.EvidenceConfidence > top.Validation.EvidenceConfidence {
			top = e
		}
	}
	return top
}
