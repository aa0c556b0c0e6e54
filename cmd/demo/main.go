// Command demo runs the analysis pipeline once over the embedded flood
// scenario and prints the resulting brief, risk score, and action plan.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Devyanikhande/CivicGuard/internal/adapter/feed"
	"github.com/Devyanikhande/CivicGuard/internal/brief"
	"github.com/Devyanikhande/CivicGuard/internal/ingest"
	"github.com/Devyanikhande/CivicGuard/internal/observability"
	"github.com/Devyanikhande/CivicGuard/internal/pipeline"
	"github.com/Devyanikhande/CivicGuard/internal/risk"
	"github.com/Devyanikhande/CivicGuard/internal/scoring"
)

func main() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()

	coordinator := ingest.New(logger, metrics, ingest.Options{
		// The sample feeds simulate collector latency, as a live run would see.
		Delays: map[string]time.Duration{
			"social":  100 * time.Millisecond,
			"weather": 50 * time.Millisecond,
		},
	})
	composer := brief.NewComposer(
		brief.NewPrimary(nil, brief.RandomFailure(0.05)),
		nil,
		logger,
	)
	orchestrator := pipeline.New(
		coordinator,
		scoring.NewEngine(scoring.DefaultConfig()),
		risk.NewModel(),
		composer,
		nil,
		logger,
		metrics,
	)

	result, err := orchestrator.Run(context.Background(), feed.SampleSources(), feed.SampleAssets())
	if err != nil {
		fmt.Fprintln(os.Stderr, "pipeline failed:", err)
		os.Exit(1)
	}

	fmt.Println("=== Brief ===")
	fmt.Println(result.Brief)
	fmt.Println("\n=== Risk Score ===")
	fmt.Println(result.RiskScore)
	fmt.Println("\n=== Actions ===")
	plan, err := json.MarshalIndent(result.Actions, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "render actions:", err)
		os.Exit(1)
	}
	fmt.Println(string(plan))
}
