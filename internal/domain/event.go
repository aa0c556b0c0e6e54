package domain

import "time"

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RawInput is a source-specific report as delivered by a feed collector.
// The Geo field is a pointer so a missing coordinate block can be told apart
// from a report at (0, 0).
type RawInput struct {
	ID     string         `json:"id"`
	Source string         `json:"source"`
	Time   string         `json:"time"`
	Geo    *Geo           `json:"geo"`
	Text   string         `json:"text"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// Priority is the discretized urgency tier of a scored event.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Validation holds the trust/severity/recency components and the composite
// evidence confidence computed by the scoring engine. All values are in [0,1];
// EvidenceConfidence is rounded to three decimals.
type Validation struct {
	Trust              float64 `json:"trust"`
	Severity           float64 `json:"severity"`
	Recency            float64 `json:"recency"`
	EvidenceConfidence float64 `json:"evidence_confidence"`
}

// EventRecord is the canonical form of a situational report. It is created
// once by Normalize and immutable afterward, except for the Validation and
// Priority fields attached by the scoring engine.
type EventRecord struct {
	EventID    string         `json:"event_id"`
	Source     string         `json:"source"`
	OrigID     string         `json:"orig_id"`
	Time       string         `json:"time"`
	Geo        Geo            `json:"geo"`
	Text       string         `json:"text"`
	Meta       map[string]any `json:"meta,omitempty"`
	IngestedAt time.Time      `json:"ingested_at"`

	Validation *Validation `json:"validation,omitempty"`
	Priority   Priority    `json:"priority,omitempty"`
}

// Asset is a known physical resource (shelter, community hall) from the
// resource registry. Assets are static reference data, read-only for the
// duration of a run.
type Asset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Capacity int     `json:"capacity"`
}

// ActionPlan pairs the nearest assets to an event (closest first) with a
// fixed ordered checklist of safety actions.
type ActionPlan struct {
	NearestAssets []Asset  `json:"nearest_assets"`
	Actions       []string `json:"actions"`
}

// PipelineResult is the sole externally visible output of one pipeline run.
type PipelineResult struct {
	Brief           string        `json:"brief"`
	RiskScore       float64       `json:"risk_score"`
	Actions         ActionPlan    `json:"actions"`
	ValidatedEvents []EventRecord `json:"validated_events"`
}
