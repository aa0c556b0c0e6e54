package scoring_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devyanikhande/CivicGuard/internal/scoring"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := scoring.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, scoring.DefaultConfig(), cfg)
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
trust_weights:
  weather_api: 0.99
  ham_radio: 0.8
tier1_keywords: ["levee breach"]
`)

	cfg, err := scoring.LoadConfig(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.99, cfg.TrustWeights["weather_api"], 1e-9)
	assert.InDelta(t, 0.8, cfg.TrustWeights["ham_radio"], 1e-9)
	assert.Equal(t, []string{"levee breach"}, cfg.Tier1Keywords)

	// Untouched fields keep their defaults.
	assert.InDelta(t, 0.4, cfg.DefaultTrust, 1e-9)
	assert.InDelta(t, 0.9, cfg.Tier1Severity, 1e-9)
	assert.Equal(t, scoring.DefaultConfig().Tier2Keywords, cfg.Tier2Keywords)
}

func TestLoadConfig_RejectsOutOfRangeWeights(t *testing.T) {
	path := writeConfig(t, `
trust_weights:
  megaphone: 1.5
`)
	_, err := scoring.LoadConfig(path)
	assert.ErrorContains(t, err, "megaphone")
}

func TestLoadConfig_RejectsOutOfRangeSeverity(t *testing.T) {
	path := writeConfig(t, "tier1_severity: -0.1\n")
	_, err := scoring.LoadConfig(path)
	assert.ErrorContains(t, err, "tier1_severity")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := scoring.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "trust_weights: [not a map")
	_, err := scoring.LoadConfig(path)
	assert.Error(t, err)
}
