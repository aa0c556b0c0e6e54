package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the static lookup tables driving validation scoring: per-source
// trust weights and the two keyword severity tiers. Tables are injected at
// engine construction so they can be tuned without code changes.
type Config struct {
	// TrustWeights maps a source name to its trust score in [0,1].
	// Sources not in the table receive DefaultTrust.
	TrustWeights map[string]float64 `yaml:"trust_weights"`
	DefaultTrust float64            `yaml:"default_trust"`

	// Tier1Keywords are checked first; any case-insensitive match yields
	// Tier1Severity. Tier2Keywords are checked only if no tier-1 phrase
	// matched. Text matching neither tier gets BaseSeverity.
	Tier1Keywords []string `yaml:"tier1_keywords"`
	Tier1Severity float64  `yaml:"tier1_severity"`
	Tier2Keywords []string `yaml:"tier2_keywords"`
	Tier2Severity float64  `yaml:"tier2_severity"`
	BaseSeverity  float64  `yaml:"base_severity"`
}

// DefaultConfig returns the built-in scoring tables: weather feeds are highly
// trusted, social sources moderately, unknown sources 0.4; flood-domain
// keyword tiers.
func DefaultConfig() Config {
	return Config{
		TrustWeights: map[string]float64{
			"weather_api": 0.95,
			"tweet":       0.5,
			"reddit":      0.6,
		},
		DefaultTrust:  0.4,
		Tier1Keywords: []string{"flash flood", "evacuate", "water entering"},
		Tier1Severity: 0.9,
		Tier2Keywords: []string{"flood", "heavy rain", "traffic"},
		Tier2Severity: 0.6,
		BaseSeverity:  0.2,
	}
}

// LoadConfig reads scoring tables from a YAML file, overlaying them on the
// defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scoring config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse scoring config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("scoring config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for source, w := range c.TrustWeights {
		if w < 0 || w > 1 {
			return fmt.Errorf("trust weight for %q out of range [0,1]: %g", source, w)
		}
	}
	for name, v := range map[string]float64{
		"default_trust":  c.DefaultTrust,
		"tier1_severity": c.Tier1Severity,
		"tier2_severity": c.Tier2Severity,
		"base_severity":  c.BaseSeverity,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s out of range [0,1]: %g", name, v)
		}
	}
	return nil
}
