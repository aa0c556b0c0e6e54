// Package memory holds the run's resource registry and answers proximity
// queries against it. The registry is immutable for the run's lifetime, so
// concurrent reads need no locking.
package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// DefaultNearest is the number of assets returned when a caller does not ask
// for a specific count.
const DefaultNearest = 2

// Bank is an immutable set of community assets.
type Bank struct {
	assets []domain.Asset
}

// NewBank copies the given assets into a Bank. The caller may reuse or modify
// its slice afterward.
func NewBank(assets []domain.Asset) *Bank {
	b := &Bank{assets: make([]domain.Asset, len(assets))}
	copy(b.assets, assets)
	return b
}

// Len returns the number of assets in the registry.
func (b *Bank) Len() int { return len(b.assets) }

// NearestK returns up to k assets sorted ascending by great-circle distance
// from the given point, ties broken by registry order. k <= 0 yields an empty
// result; k beyond the registry size returns all assets.
func (b *Bank) NearestK(lat, lon float64, k int) []domain.Asset {
	if k <= 0 || len(b.assets) == 0 {
		return nil
	}

	type scored struct {
		dist  float64
		asset domain.Asset
	}
	ranked := make([]scored, len(b.assets))
	for i, a := range b.assets {
		ranked[i] = scored{dist: domain.DistanceKm(lat, lon, a.Lat, a.Lon), asset: a}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]domain.Asset, k)
	for i := range out {
		out[i] = ranked[i].asset
	}
	return out
}

// CompactContext reduces the registry to a bounded text digest: a fixed
// header followed by one line per nearest asset. This is the only knowledge
// handed to brief generation, so the generator never needs the full registry.
func (b *Bank) CompactContext(location domain.Geo, k int) string {
	var sb strings.Builder
	sb.WriteString("Relevant community assets:")
	for _, a := range b.NearestK(location.Lat, location.Lon, k) {
		sb.WriteString(fmt.Sprintf("\n- %s (cap %d)", a.Name, a.Capacity))
	}
	return sb.String()
}
