package brief

import (
	"fmt"
	"strings"
	"time"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// fallbackTopN is how many events the degraded summary covers.
const fallbackTopN = 2

// Fallback renders the deterministic degraded summary used when primary
// generation fails. It uses only information already computed, makes no
// external calls, and cannot itself fail.
func Fallback(events []domain.EventRecord, assetContext string, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[Fallback Summary - %s]\n", now.UTC().Format(time.RFC3339))
	for _, e := range topByConfidence(events, fallbackTopN) {
		fmt.Fprintf(&sb, "- %s (conf %g)\n", e.Text, confidenceOf(e))
	}
	sb.WriteString("\nAssets:\n")
	sb.WriteString(assetContext)
	return sb.String()
}
