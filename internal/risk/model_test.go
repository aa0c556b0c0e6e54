package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Devyanikhande/CivicGuard/internal/risk"
)

func TestScore_DefaultSignals(t *testing.T) {
	m := risk.NewModel()

	// 0.4*0.935 + 0.3*0.9 + 0.2*0.6 + 0.1*0.2 = 0.374 + 0.27 + 0.12 + 0.02
	assert.InDelta(t, 0.784, m.Score(0.935, 0.9), 1e-9)
}

func TestScore_Rounding(t *testing.T) {
	m := risk.NewModel()

	// 0.4*0.3333 + 0.3*0.1 + 0.12 + 0.02 = 0.30332 -> 0.303
	assert.InDelta(t, 0.303, m.Score(0.3333, 0.1), 1e-9)
}

func TestScore_Bounds(t *testing.T) {
	m := risk.NewModelWithSignals(1, 1)
	assert.InDelta(t, 1.0, m.Score(1, 1), 1e-9)

	m = risk.NewModelWithSignals(0, 0)
	assert.InDelta(t, 0.0, m.Score(0, 0), 1e-9)
}

func TestScore_CustomSignals(t *testing.T) {
	m := risk.NewModelWithSignals(0.9, 0.5)

	// 0.4*0.5 + 0.3*0.5 + 0.2*0.9 + 0.1*0.5 = 0.2 + 0.15 + 0.18 + 0.05
	assert.InDelta(t, 0.58, m.Score(0.5, 0.5), 1e-9)
}
