// Package brief produces the human-readable situation brief. Generation is a
// two-state protocol: a single attempt at the primary generator, then an
// unconditional deterministic fallback on any failure. There is no retry
// loop, and a primary failure never reaches the orchestrator's caller.
package brief

import (
	"context"
	"errors"
	"sort"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// ErrGenerationFailed is returned by a Generator when it cannot produce a
// brief. The composer treats any generator error as a signal to fall back.
var ErrGenerationFailed = errors.New("brief generation failed")

// Generator models an external, occasionally-unreliable text-generation
// service behind a narrow contract. Implementations may be a real generation
// backend or a deterministic test double.
type Generator interface {
	Generate(ctx context.Context, events []domain.EventRecord, assetContext string) (string, error)
}

// topByConfidence returns up to n scored events ordered by evidence
// confidence descending, ties broken by original sequence order. Events
// without validation data sort last.
func topByConfidence(events []domain.EventRecord, n int) []domain.EventRecord {
	ranked := make([]domain.EventRecord, len(events))
	copy(ranked, events)
	sort.SliceStable(ranked, func(i, j int) bool {
		return confidenceOf(ranked[i]) > confidenceOf(ranked[j])
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func confidenceOf(e domain.EventRecord) float64 {
	if e.Validation == nil {
		return -1
	}
	return e.Validation.EvidenceConfidence
}
