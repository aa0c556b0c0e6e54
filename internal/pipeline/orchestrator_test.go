package pipeline_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devyanikhande/CivicGuard/internal/adapter/feed"
	"github.com/Devyanikhande/CivicGuard/internal/brief"
	"github.com/Devyanikhande/CivicGuard/internal/domain"
	"github.com/Devyanikhande/CivicGuard/internal/ingest"
	"github.com/Devyanikhande/CivicGuard/internal/observability"
	"github.com/Devyanikhande/CivicGuard/internal/pipeline"
	"github.com/Devyanikhande/CivicGuard/internal/risk"
	"github.com/Devyanikhande/CivicGuard/internal/scoring"
)

// runTime is shortly after the sample dataset's report times, so recency is
// still high.
var runTime = time.Date(2025, time.November, 24, 10, 15, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrchestrator(t *testing.T, fail brief.FailureSource) *pipeline.Orchestrator {
	t.Helper()
	clock := clockwork.NewFakeClockAt(runTime)
	logger := testLogger()
	metrics := observability.NewMetricsForTesting()

	coordinator := ingest.New(logger, metrics, ingest.Options{})
	composer := brief.NewComposer(brief.NewPrimary(clock, fail), clock, logger)

	return pipeline.New(
		coordinator,
		scoring.NewEngine(scoring.DefaultConfig()),
		risk.NewModel(),
		composer,
		clock,
		logger,
		metrics,
	)
}

func TestRun_SampleScenario(t *testing.T) {
	o := newOrchestrator(t, nil)

	result, err := o.Run(context.Background(), feed.SampleSources(), feed.SampleAssets())
	require.NoError(t, err)

	require.Len(t, result.ValidatedEvents, 4)
	for _, e := range result.ValidatedEvents {
		require.NotNil(t, e.Validation)
		assert.GreaterOrEqual(t, e.Validation.EvidenceConfidence, 0.0)
		assert.LessOrEqual(t, e.Validation.EvidenceConfidence, 1.0)
		assert.Contains(t, []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}, e.Priority)
	}

	// The weather warning dominates: trust 0.95, severity 0.9, 15 minutes
	// old -> recency 0.75 -> confidence 0.91, and risk 0.4*0.91 + 0.3*0.9 +
	// 0.2*0.6 + 0.1*0.2 = 0.774.
	assert.InDelta(t, 0.774, result.RiskScore, 1e-9)

	assert.Contains(t, result.Brief, "Crisis Brief")
	assert.Contains(t, result.Brief, "Relevant community assets:")

	require.Len(t, result.Actions.NearestAssets, 2)
	assert.Equal(t, "shelter_1", result.Actions.NearestAssets[0].ID)
	assert.Equal(t, "shelter_2", result.Actions.NearestAssets[1].ID)
	assert.Equal(t, []string{
		"Avoid flooded roads",
		"Move to higher ground",
		"Assist vulnerable individuals",
	}, result.Actions.Actions)
}

func TestRun_EmptySources(t *testing.T) {
	o := newOrchestrator(t, nil)

	_, err := o.Run(context.Background(), map[string][]domain.RawInput{}, feed.SampleAssets())
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestRun_AllEventsUnscorable(t *testing.T) {
	o := newOrchestrator(t, nil)

	sources := map[string][]domain.RawInput{
		"social": {{
			ID: "t1", Source: "tweet", Time: "not a timestamp",
			Geo: &domain.Geo{Lat: 37.77, Lon: -122.42}, Text: "flood",
		}},
	}
	_, err := o.Run(context.Background(), sources, feed.SampleAssets())
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestRun_SkipsUnscorableEvents(t *testing.T) {
	o := newOrchestrator(t, nil)

	sources := feed.SampleSources()
	sources["social"] = append(sources["social"], domain.RawInput{
		ID: "bad", Source: "tweet", Time: "garbage",
		Geo: &domain.Geo{Lat: 37.77, Lon: -122.42}, Text: "flood",
	})

	result, err := o.Run(context.Background(), sources, feed.SampleAssets())
	require.NoError(t, err)
	assert.Len(t, result.ValidatedEvents, 4)
	for _, e := range result.ValidatedEvents {
		assert.NotEqual(t, "bad", e.OrigID)
	}
}

func TestRun_FallbackBriefOnPrimaryFailure(t *testing.T) {
	o := newOrchestrator(t, func() bool { return true })

	result, err := o.Run(context.Background(), feed.SampleSources(), feed.SampleAssets())
	require.NoError(t, err, "primary generation failure must not surface")

	assert.Contains(t, result.Brief, "[Fallback Summary")
	assert.Contains(t, result.Brief, "Relevant community assets:")
	assert.NotEmpty(t, result.Brief)

	// Same inputs, same fallback.
	again, err := o.Run(context.Background(), feed.SampleSources(), feed.SampleAssets())
	require.NoError(t, err)
	assert.Equal(t, result.Brief, again.Brief)
}

func TestRun_EmptyAssetRegistry(t *testing.T) {
	o := newOrchestrator(t, nil)

	result, err := o.Run(context.Background(), feed.SampleSources(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Actions.NearestAssets)
	assert.NotEmpty(t, result.Actions.Actions)
}

func TestCheckReadiness(t *testing.T) {
	o := newOrchestrator(t, nil)
	assert.Error(t, o.CheckReadiness(context.Background()))

	_, err := o.Run(context.Background(), feed.SampleSources(), feed.SampleAssets())
	require.NoError(t, err)
	assert.NoError(t, o.CheckReadiness(context.Background()))
}
