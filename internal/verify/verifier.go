package verify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/llm"
)

// DocumentInput is one uploaded document's extracted text, keyed by category
// in the Verify call.
type DocumentInput struct {
	Text string
}

// Verifier runs the per-category verification pipeline and the fan-in join.
type Verifier struct {
	gen    llm.Generator
	logger *slog.Logger
}

func NewVerifier(gen llm.Generator, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{gen: gen, logger: logger}
}

type categoryOutcome struct {
	category constants.DocumentCategory
	result   entity.VerificationResult
	err      error
}

// Verify checks every present category concurrently and joins after all
// settle. Categories are independent: each goroutine touches only its own
// slot. Any category failure propagates, with no silent fallback, but the
// returned summary still aggregates the categories that completed, so a
// cancelled request keeps its partial results.
func (v *Verifier) Verify(ctx context.Context, claim ClaimContext, documents map[constants.DocumentCategory]DocumentInput) (entity.VerificationSummary, error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()
	v.logger.Info("verify.start", "req_id", rid, "categories", len(documents))

	outcomes := make(chan categoryOutcome, len(documents))
	var wg sync.WaitGroup
	for category, doc := range documents {
		wg.Add(1)
		go func(category constants.DocumentCategory, doc DocumentInput) {
			defer wg.Done()
			result, err := v.verifyCategory(ctx, rid, category, claim, doc)
			outcomes <- categoryOutcome{category: category, result: result, err: err}
		}(category, doc)
	}
	wg.Wait()
	close(outcomes)

	results := make(map[constants.DocumentCategory]entity.VerificationResult, len(documents))
	var firstErr error
	for o := range outcomes {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		results[o.category] = o.result
	}

	summary := Aggregate(results)
	if firstErr != nil {
		v.logger.Error("verify.failed",
			"req_id", rid,
			"error", firstErr,
			"completed", len(results),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return summary, firstErr
	}

	v.logger.Info("verify.ok",
		"req_id", rid,
		"status", summary.Status,
		"overall_confidence", summary.OverallConfidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

func (v *Verifier) verifyCategory(ctx context.Context, rid string, category constants.DocumentCategory, claim ClaimContext, doc DocumentInput) (entity.VerificationResult, error) {
	start := time.Now()

	raw, err := v.gen.Generate(ctx, BuildPrompt(category, claim, doc.Text))
	if err != nil {
		v.logger.Error("verify.category.generate_failed",
			"req_id", rid, "category", category, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.VerificationResult{}, err
	}

	result, err := ParseResult(category, llm.Normalize(raw))
	if err != nil {
		v.logger.Error("verify.category.parse_failed",
			"req_id", rid, "category", category, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.VerificationResult{}, err
	}

	v.logger.Info("verify.category.ok",
		"req_id", rid,
		"category", category,
		"is_valid", result.IsValid,
		"confidence", result.Confidence,
		"match_score", result.MatchScore,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
