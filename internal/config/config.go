package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	IngestWorkers     int
	IngestJoinTimeout time.Duration

	// ScoringConfigPath optionally points at a YAML file overriding the
	// built-in trust and keyword tables.
	ScoringConfigPath string

	// AssetsPath optionally points at a JSON file with the community asset
	// registry. Empty means the embedded sample registry.
	AssetsPath string

	// BriefFailureRate is the injected failure probability of the primary
	// brief generator, in [0,1).
	BriefFailureRate float64

	// Kafka feed settings. The feed is enabled when KAFKA_BROKERS is set
	// (overridable via KAFKA_ENABLED).
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaTopic       string
	KafkaGroupID     string
	FeedBatchSize    int
	FeedPollInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	joinTimeout, err := getDuration("INGEST_JOIN_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	pollInterval, err := getDuration("FEED_POLL_INTERVAL", "5s")
	if err != nil {
		return nil, err
	}

	failureRate, err := getFloat("BRIEF_FAILURE_RATE", 0.05)
	if err != nil {
		return nil, err
	}
	if failureRate < 0 || failureRate >= 1 {
		return nil, errors.New("BRIEF_FAILURE_RATE must be in [0,1)")
	}

	brokers := splitAndTrim(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		IngestWorkers:     getInt("INGEST_WORKERS", 4),
		IngestJoinTimeout: joinTimeout,

		ScoringConfigPath: os.Getenv("SCORING_CONFIG_PATH"),
		AssetsPath:        os.Getenv("ASSETS_PATH"),
		BriefFailureRate:  failureRate,

		KafkaEnabled:     kafkaEnabled,
		KafkaBrokers:     brokers,
		KafkaTopic:       getEnv("KAFKA_TOPIC", "raw-crisis-reports"),
		KafkaGroupID:     getEnv("KAFKA_GROUP_ID", "civicguard"),
		FeedBatchSize:    getInt("FEED_BATCH_SIZE", 50),
		FeedPollInterval: pollInterval,
	}

	if cfg.IngestWorkers <= 0 {
		return nil, errors.New("INGEST_WORKERS must be positive")
	}
	if cfg.FeedBatchSize <= 0 {
		return nil, errors.New("FEED_BATCH_SIZE must be positive")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key, fallback string) (time.Duration, error) {
	s := getEnv(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
