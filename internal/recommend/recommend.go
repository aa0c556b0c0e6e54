// Package recommend pairs a high-priority event with nearby physical
// resources and a fixed safety checklist.
package recommend

import (
	"github.com/Devyanikhande/CivicGuard/internal/domain"
	"github.com/Devyanikhande/CivicGuard/internal/memory"
)

// defaultActions is the fixed, ordered safety checklist attached to every
// plan. The instructions are domain boilerplate, not computed.
var defaultActions = []string{
	"Avoid flooded roads",
	"Move to higher ground",
	"Assist vulnerable individuals",
}

// Plan builds an ActionPlan for the event: the nearest assets from the
// resource bank plus the standard checklist. An empty registry yields an
// empty asset list, not an error.
func Plan(event domain.EventRecord, bank *memory.Bank) domain.ActionPlan {
	return domain.ActionPlan{
		NearestAssets: bank.NearestK(event.Geo.Lat, event.Geo.Lon, memory.DefaultNearest),
		Actions:       append([]string(nil), defaultActions...),
	}
}
