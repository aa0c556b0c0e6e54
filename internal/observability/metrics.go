package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// analysis pipeline.
type Metrics struct {
	EventsIngested  prometheus.Counter
	MalformedInputs prometheus.Counter
	SourceFailures  prometheus.Counter
	ScoringDropped  prometheus.Counter
	BriefFallbacks  prometheus.Counter

	PipelineRuns     prometheus.Counter
	PipelineDuration prometheus.Histogram
	LastRiskScore    prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		EventsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civicguard",
			Name:      "events_ingested_total",
			Help:      "Total raw reports normalized into event records.",
		}),
		MalformedInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civicguard",
			Name:      "malformed_inputs_total",
			Help:      "Total raw reports dropped for missing required fields.",
		}),
		SourceFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civicguard",
			Name:      "source_failures_total",
			Help:      "Total per-source ingestion task failures.",
		}),
		ScoringDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civicguard",
			Name:      "scoring_dropped_total",
			Help:      "Total events skipped at scoring time (unparseable timestamps).",
		}),
		BriefFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civicguard",
			Name:      "brief_fallbacks_total",
			Help:      "Total runs that used the deterministic fallback brief.",
		}),
		PipelineRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "civicguard",
			Name:      "pipeline_runs_total",
			Help:      "Total completed pipeline runs.",
		}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "civicguard",
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of a complete ingest-score-brief cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		LastRiskScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "civicguard",
			Name:      "last_risk_score",
			Help:      "Composite risk score of the most recent run.",
		}),
	}

	prometheus.MustRegister(
		m.EventsIngested,
		m.MalformedInputs,
		m.SourceFailures,
		m.ScoringDropped,
		m.BriefFallbacks,
		m.PipelineRuns,
		m.PipelineDuration,
		m.LastRiskScore,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		EventsIngested:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "civicguard", Name: "events_ingested_total"}),
		MalformedInputs:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "civicguard", Name: "malformed_inputs_total"}),
		SourceFailures:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "civicguard", Name: "source_failures_total"}),
		ScoringDropped:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "civicguard", Name: "scoring_dropped_total"}),
		BriefFallbacks:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "civicguard", Name: "brief_fallbacks_total"}),
		PipelineRuns:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "civicguard", Name: "pipeline_runs_total"}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "civicguard", Name: "pipeline_duration_seconds"}),
		LastRiskScore:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "civicguard", Name: "last_risk_score"}),
	}
}
