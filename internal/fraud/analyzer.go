package fraud

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/llm"
)

// Fields are the claim attributes fraud scoring needs. All are required;
// the caller passes them as submitted, before any normalization.
type Fields struct {
	ClaimType        string
	IncidentDate     string
	IncidentLocation string
	Description      string
	ClaimAmount      string
}

func (f Fields) missing() []string {
	var out []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			out = append(out, name)
		}
	}
	check("claimType", f.ClaimType)
	check("incidentDate", f.IncidentDate)
	check("incidentLocation", f.IncidentLocation)
	check("description", f.Description)
	check("claimAmount", f.ClaimAmount)
	return out
}

// Analyzer runs the build -> generate -> normalize -> parse pipeline for
// fraud scoring.
type Analyzer struct {
	gen    llm.Generator
	logger *slog.Logger
}

func NewAnalyzer(gen llm.Generator, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{gen: gen, logger: logger}
}

// Analyze scores one claim. Missing required fields fail fast with a
// MissingFieldError and no gateway call. Every failure past that point
// (upstream, normalization, parsing, validation) collapses to the fixed
// fallback result instead of an error: a conservative manual-review signal
// must never block claim submission.
func (a *Analyzer) Analyze(ctx context.Context, fields Fields) (Result, error) {
	if missing := fields.missing(); len(missing) > 0 {
		a.logger.Warn("fraud.analyze.missing_fields", "fields", missing)
		return Result{}, &common.MissingFieldError{Fields: missing}
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()
	a.logger.Info("fraud.analyze.start",
		"req_id", rid,
		"claim_type", fields.ClaimType,
		"description_len", len(fields.Description),
	)

	raw, err := a.gen.Generate(ctx, BuildPrompt(fields))
	if err != nil {
		a.logger.Error("fraud.analyze.generate_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return FallbackResult(), nil
	}

	res, err := ParseResult(llm.Normalize(raw))
	if err != nil {
		a.logger.Error("fraud.analyze.parse_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return FallbackResult(), nil
	}

	a.logger.Info("fraud.analyze.ok",
		"req_id", rid,
		"score", res.FraudRiskScore,
		"level", res.RiskLevel,
		"recommendation", res.Recommendation,
		"findings", len(res.KeyFindings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// FallbackResult is the fixed conservative result returned when scoring
// cannot complete.
func FallbackResult() Result {
	return Result{
		FraudRiskScore: 50,
		RiskLevel:      constants.RiskLevelMedium,
		Recommendation: constants.RecommendationReview,
		KeyFindings: []string{
			"Fraud analysis failed - manual review required",
			"Response parsing error - check logs for details",
		},
	}
}
