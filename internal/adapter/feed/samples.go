// Package feed supplies raw situational reports to the pipeline: an embedded
// sample dataset for demos and offline runs, a JSON asset registry loader,
// and a Kafka batch reader for live feeds. The core never sees any of this;
// it only consumes the normalized source map and asset slice.
package feed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// SampleSources returns the embedded demo dataset: a small urban flood
// scenario with two social feeds and one weather feed.
func SampleSources() map[string][]domain.RawInput {
	return map[string][]domain.RawInput{
		"social": {
			{
				ID: "t1", Source: "tweet", Time: "2025-11-24T10:12:00Z",
				Geo:  &domain.Geo{Lat: 37.77, Lon: -122.42},
				Text: "Water rising fast on Elm St near 5th! Cars stuck.",
				Meta: map[string]any{"likes": 3},
			},
			{
				ID: "t2", Source: "tweet", Time: "2025-11-24T10:13:05Z",
				Geo:  &domain.Geo{Lat: 37.7705, Lon: -122.419},
				Text: "Elm St sidewalks flooded, be careful.",
				Meta: map[string]any{"likes": 1},
			},
			{
				ID: "r1", Source: "reddit", Time: "2025-11-24T10:11:30Z",
				Geo:  &domain.Geo{Lat: 37.78, Lon: -122.41},
				Text: "Flooding reported near Riverside Market. Traffic bad.",
				Meta: map[string]any{"ups": 5},
			},
		},
		"weather": {
			{
				ID: "w1", Source: "weather_api", Time: "2025-11-24T10:00:00Z",
				Geo:  &domain.Geo{Lat: 37.77, Lon: -122.42},
				Text: "Heavy rainfall cell over downtown. Flash flood warning issued.",
				Meta: map[string]any{"severity": "high"},
			},
		},
	}
}

// SampleAssets returns the embedded community asset registry matching the
// demo scenario.
func SampleAssets() []domain.Asset {
	return []domain.Asset{
		{ID: "shelter_1", Name: "Community Hall", Lat: 37.7715, Lon: -122.418, Capacity: 200},
		{ID: "shelter_2", Name: "High School Gym", Lat: 37.765, Lon: -122.425, Capacity: 500},
	}
}

// LoadAssets reads an asset registry from a JSON file. An empty path returns
// the embedded sample registry.
func LoadAssets(path string) ([]domain.Asset, error) {
	if path == "" {
		return SampleAssets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset registry: %w", err)
	}
	var assets []domain.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("parse asset registry %s: %w", path, err)
	}
	for i, a := range assets {
		if a.Capacity < 0 {
			return nil, fmt.Errorf("asset registry %s: asset %d (%s) has negative capacity", path, i, a.ID)
		}
	}
	return assets, nil
}
