package brief

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// primaryTopN is how many events the primary brief covers.
const primaryTopN = 3

// FailureSource reports whether a generation attempt should fail. It stands
// in for the unreliability of a real text-generation backend.
type FailureSource func() bool

// RandomFailure returns a FailureSource failing with the given probability.
func RandomFailure(rate float64) FailureSource {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func() bool {
		return rng.Float64() < rate
	}
}

// NeverFail is a FailureSource for deterministic runs.
func NeverFail() bool { return false }

// Primary renders the full structured brief: timestamped header, one block
// per top event, the compacted context, and a closing recommendation line.
type Primary struct {
	clock clockwork.Clock
	fail  FailureSource
}

// NewPrimary creates the primary generator. A nil clock means real time; a
// nil failure source means the generator never fails.
func NewPrimary(clock clockwork.Clock, fail FailureSource) *Primary {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if fail == nil {
		fail = NeverFail
	}
	return &Primary{clock: clock, fail: fail}
}

// Generate renders the brief for the top events, or fails per the injected
// failure source.
func (p *Primary) Generate(_ context.Context, events []domain.EventRecord, assetContext string) (string, error) {
	if p.fail() {
		return "", fmt.Errorf("%w: simulated backend failure", ErrGenerationFailed)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Crisis Brief (%s):\n", p.clock.Now().UTC().Format(time.RFC3339))
	for _, e := range topByConfidence(events, primaryTopN) {
		fmt.Fprintf(&sb, "\n- %s [%s]: %s\n", e.Source, e.OrigID, e.Text)
		fmt.Fprintf(&sb, "  Confidence=%g, Priority=%s\n", confidenceOf(e), e.Priority)
	}
	sb.WriteString("\nContext:\n")
	sb.WriteString(assetContext)
	sb.WriteString("\n\nRecommended: Avoid the affected zone, check nearest shelters.")
	return sb.String(), nil
}
