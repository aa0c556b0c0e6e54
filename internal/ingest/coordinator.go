// Package ingest runs per-source normalization tasks concurrently and merges
// their results. Sources fail independently: one slow or broken feed never
// blocks the others, and a failed source contributes an empty result plus a
// reported SourceIngestionError instead of aborting the run.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
	"github.com/Devyanikhande/CivicGuard/internal/observability"
)

// errJoinTimeout marks sources still unfinished when the join barrier's
// defensive timeout expires.
var errJoinTimeout = errors.New("ingestion join timeout expired")

const (
	// DefaultWorkers bounds how many source tasks run at once. Per-event
	// parallelism is deliberately absent; sources are few and small.
	DefaultWorkers = 4

	// DefaultJoinTimeout bounds the wait at the join barrier. Sources still
	// running when it expires are treated as failed.
	DefaultJoinTimeout = 30 * time.Second
)

// Options tunes a Coordinator. Zero values take the package defaults.
type Options struct {
	Workers     int
	JoinTimeout time.Duration

	// Delays simulates per-source I/O latency (the wire time a real feed
	// collector would spend). Sources absent from the map run immediately.
	Delays map[string]time.Duration
}

// Coordinator fans raw inputs out to per-source normalization tasks.
type Coordinator struct {
	workers     int
	joinTimeout time.Duration
	delays      map[string]time.Duration
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Coordinator.
func New(logger *slog.Logger, metrics *observability.Metrics, opts Options) *Coordinator {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.JoinTimeout <= 0 {
		opts.JoinTimeout = DefaultJoinTimeout
	}
	return &Coordinator{
		workers:     opts.Workers,
		joinTimeout: opts.JoinTimeout,
		delays:      opts.Delays,
		logger:      logger,
		metrics:     metrics,
	}
}

type sourceResult struct {
	source string
	events []domain.EventRecord
	err    error
}

// Ingest normalizes every source's raw inputs concurrently and merges the
// results. Within a source the input order is preserved; the merge order
// across sources is unspecified. Each failed or timed-out source is reported
// as a SourceIngestionError; ingestion of the remaining sources still
// completes.
func (c *Coordinator) Ingest(ctx context.Context, sources map[string][]domain.RawInput) ([]domain.EventRecord, []domain.SourceIngestionError) {
	if len(sources) == 0 {
		return nil, nil
	}

	results := make(chan sourceResult, len(sources))
	slots := make(chan struct{}, c.workers)

	for name, inputs := range sources {
		go func(name string, inputs []domain.RawInput) {
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results <- sourceResult{source: name, err: ctx.Err()}
				return
			}
			events, err := c.runSource(ctx, name, inputs)
			results <- sourceResult{source: name, events: events, err: err}
		}(name, inputs)
	}

	return c.collect(sources, results)
}

// runSource is one ingestion task: simulate the source's latency, then
// normalize its inputs in order. Malformed records are dropped individually
// and do not fail the source.
func (c *Coordinator) runSource(ctx context.Context, name string, inputs []domain.RawInput) ([]domain.EventRecord, error) {
	if d := c.delays[name]; d > 0 {
		if !sleepWithContext(ctx, d) {
			return nil, ctx.Err()
		}
	}

	events := make([]domain.EventRecord, 0, len(inputs))
	for _, raw := range inputs {
		event, err := domain.Normalize(raw)
		if err != nil {
			c.logger.Warn("dropping malformed input",
				"source", name,
				"orig_id", raw.ID,
				"error", err,
			)
			c.metrics.MalformedInputs.Inc()
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

// collect drains task results until every source reported or the join
// timeout expires. Unfinished sources at expiry are treated as failed.
func (c *Coordinator) collect(sources map[string][]domain.RawInput, results <-chan sourceResult) ([]domain.EventRecord, []domain.SourceIngestionError) {
	timer := time.NewTimer(c.joinTimeout)
	defer timer.Stop()

	var merged []domain.EventRecord
	var srcErrs []domain.SourceIngestionError
	pending := make(map[string]struct{}, len(sources))
	for name := range sources {
		pending[name] = struct{}{}
	}

	for len(pending) > 0 {
		select {
		case r := <-results:
			delete(pending, r.source)
			if r.err != nil {
				c.logger.Warn("source ingestion failed", "source", r.source, "error", r.err)
				c.metrics.SourceFailures.Inc()
				srcErrs = append(srcErrs, domain.SourceIngestionError{Source: r.source, Err: r.err})
				continue
			}
			merged = append(merged, r.events...)
		case <-timer.C:
			for name := range pending {
				c.logger.Warn("source ingestion timed out at join barrier", "source", name)
				c.metrics.SourceFailures.Inc()
				srcErrs = append(srcErrs, domain.SourceIngestionError{Source: name, Err: errJoinTimeout})
			}
			return merged, srcErrs
		}
	}
	return merged, srcErrs
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
