// fraudcheck runs the fraud analyzer once against claim details given on the
// command line and prints the assessment. Useful for prompt and contract
// debugging without a database or server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claimdesk/claims-intake/internal/fraud"
	"github.com/claimdesk/claims-intake/internal/llm/openai"
)

func main() {
	claimType := flag.String("type", "", "claim type (AUTO, HOME, HEALTH, LIFE, TRAVEL, OTHER)")
	incidentDate := flag.String("date", "", "incident date (YYYY-MM-DD)")
	location := flag.String("location", "", "incident location")
	description := flag.String("description", "", "incident description")
	amount := flag.String("amount", "", "claim amount")
	timeout := flag.Duration("timeout", 60*time.Second, "overall timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	client := openai.NewClient(openai.Config{
		Model:   os.Getenv("OPENAI_MODEL"),
		APIKey:  apiKey,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	}, logger)
	analyzer := fraud.NewAnalyzer(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := analyzer.Analyze(ctx, fraud.Fields{
		ClaimType:        *claimType,
		IncidentDate:     *incidentDate,
		IncidentLocation: *location,
		Description:      *description,
		ClaimAmount:      *amount,
	})
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}
