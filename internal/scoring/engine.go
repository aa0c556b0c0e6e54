// Package scoring validates situational reports and assigns each an evidence
// confidence score and priority tier. The engine is a pure function of its
// inputs, the injected tables, and the caller-supplied current time.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// Evidence confidence is a fixed linear blend of the three signals.
const (
	trustWeight    = 0.5
	severityWeight = 0.4
	recencyWeight  = 0.1

	// recencyWindow is the age at which a report's recency decays to zero.
	recencyWindow = time.Hour
)

// Priority thresholds are half-open on the upper bound: confidence exactly at
// a boundary falls to the lower tier.
const (
	highThreshold   = 0.7
	mediumThreshold = 0.45
)

// Engine scores events against static trust and severity tables.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine with the given tables.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Score returns a copy of the event with Validation and Priority populated.
// It fails with an InvalidTimestampError if the event time cannot be parsed;
// the caller should skip the event rather than abort the run.
func (e *Engine) Score(event domain.EventRecord, now time.Time) (domain.EventRecord, error) {
	recency, err := recencyAt(event.Time, now)
	if err != nil {
		return domain.EventRecord{}, err
	}

	trust := e.trust(event.Source)
	severity := e.severity(event.Text)
	confidence := round3(trustWeight*trust + severityWeight*severity + recencyWeight*recency)

	event.Validation = &domain.Validation{
		Trust:              trust,
		Severity:           severity,
		Recency:            recency,
		EvidenceConfidence: confidence,
	}
	event.Priority = priorityFor(confidence)
	return event, nil
}

// trust looks up the source's trust weight, falling back to the default for
// unknown sources.
func (e *Engine) trust(source string) float64 {
	if w, ok := e.cfg.TrustWeights[source]; ok {
		return w
	}
	return e.cfg.DefaultTrust
}

// severity matches the text against the keyword tiers, case-insensitively.
// Tier 1 is checked before tier 2; the first matching tier wins.
func (e *Engine) severity(text string) float64 {
	lower := strings.ToLower(text)
	for _, kw := range e.cfg.Tier1Keywords {
		if strings.Contains(lower, kw) {
			return e.cfg.Tier1Severity
		}
	}
	for _, kw := range e.cfg.Tier2Keywords {
		if strings.Contains(lower, kw) {
			return e.cfg.Tier2Severity
		}
	}
	return e.cfg.BaseSeverity
}

// recencyAt computes the linear recency decay: 1.0 for a report at `now`,
// falling to 0 over one hour, clipped to [0,1]. Reports timestamped in the
// future clip to 1.
func recencyAt(value string, now time.Time) (float64, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, &domain.InvalidTimestampError{Value: value, Err: err}
	}

	age := now.Sub(t).Seconds()
	r := 1 - math.Min(age/recencyWindow.Seconds(), 1)
	return math.Min(math.Max(r, 0), 1), nil
}

func priorityFor(confidence float64) domain.Priority {
	switch {
	case confidence > highThreshold:
		return domain.PriorityHigh
	case confidence > mediumThreshold:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
