package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 4, cfg.IngestWorkers)
	assert.Equal(t, 30*time.Second, cfg.IngestJoinTimeout)
	assert.Empty(t, cfg.ScoringConfigPath)
	assert.Empty(t, cfg.AssetsPath)
	assert.InDelta(t, 0.05, cfg.BriefFailureRate, 1e-9)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "raw-crisis-reports", cfg.KafkaTopic)
	assert.Equal(t, "civicguard", cfg.KafkaGroupID)
	assert.Equal(t, 50, cfg.FeedBatchSize)
	assert.Equal(t, 5*time.Second, cfg.FeedPollInterval)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("INGEST_WORKERS", "8")
	t.Setenv("INGEST_JOIN_TIMEOUT", "5s")
	t.Setenv("BRIEF_FAILURE_RATE", "0.2")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-reports")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("FEED_BATCH_SIZE", "10")
	t.Setenv("FEED_POLL_INTERVAL", "1s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 8, cfg.IngestWorkers)
	assert.Equal(t, 5*time.Second, cfg.IngestJoinTimeout)
	assert.InDelta(t, 0.2, cfg.BriefFailureRate, 1e-9)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-reports", cfg.KafkaTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, 10, cfg.FeedBatchSize)
	assert.Equal(t, time.Second, cfg.FeedPollInterval)
}

func TestLoad_KafkaDisabledOverride(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092")
	t.Setenv("KAFKA_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]struct {
		key, value string
	}{
		"negative failure rate":  {"BRIEF_FAILURE_RATE", "-0.1"},
		"failure rate of one":    {"BRIEF_FAILURE_RATE", "1"},
		"unparseable rate":       {"BRIEF_FAILURE_RATE", "often"},
		"bad shutdown timeout":   {"SHUTDOWN_TIMEOUT", "soon"},
		"zero join timeout":      {"INGEST_JOIN_TIMEOUT", "0s"},
		"zero workers":           {"INGEST_WORKERS", "0"},
		"zero batch size":        {"FEED_BATCH_SIZE", "0"},
		"enabled without broker": {"KAFKA_ENABLED", "true"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
