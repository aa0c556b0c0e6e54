package brief

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// Composer runs the primary/fallback generation protocol. The fallback state
// is terminal for the run: one attempt at the primary, then the deterministic
// summary.
type Composer struct {
	primary Generator
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewComposer wires a primary generator to the fallback path. A nil clock
// means real time.
func NewComposer(primary Generator, clock clockwork.Clock, logger *slog.Logger) *Composer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Composer{primary: primary, clock: clock, logger: logger}
}

// Compose returns the brief and whether the fallback path was taken. It never
// returns an error: a primary failure is absorbed here and replaced by the
// fallback summary built from the same inputs.
func (c *Composer) Compose(ctx context.Context, events []domain.EventRecord, assetContext string) (string, bool) {
	out, err := c.primary.Generate(ctx, events, assetContext)
	if err != nil {
		c.logger.Warn("primary brief generation failed, using fallback", "error", err)
		return Fallback(events, assetContext, c.clock.Now()), true
	}
	return out, false
}
