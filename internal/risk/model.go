// Package risk computes a single composite risk score from validated signals.
package risk

import "math"

// Weights of the fixed linear combination. Population density and historical
// flood frequency are external signals; in this scope they carry fixed
// defaults standing in for demographic and historical data sources.
const (
	confidenceWeight = 0.4
	severityWeight   = 0.3
	populationWeight = 0.2
	historicalWeight = 0.1

	DefaultPopulation          = 0.6
	DefaultHistoricalFrequency = 0.2
)

// Model is a fixed linear risk model. No learning, no per-call calibration.
type Model struct {
	population float64
	historical float64
}

// NewModel creates a Model with the default external signal values.
func NewModel() *Model {
	return &Model{
		population: DefaultPopulation,
		historical: DefaultHistoricalFrequency,
	}
}

// NewModelWithSignals creates a Model with explicit population and historical
// frequency signals, both expected in [0,1].
func NewModelWithSignals(population, historical float64) *Model {
	return &Model{population: population, historical: historical}
}

// Score blends confidence and severity with the external signals into a
// scalar in [0,1], rounded to three decimals.
func (m *Model) Score(confidence, severity float64) float64 {
	s := confidenceWeight*confidence +
		severityWeight*severity +
		populationWeight*m.population +
		historicalWeight*m.historical
	return math.Round(s*1000) / 1000
}
