package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
)

// categoryStubGenerator routes canned responses by the category named in the
// prompt. Safe for concurrent use.
type categoryStubGenerator struct {
	mu        sync.Mutex
	responses map[constants.DocumentCategory]string
	errs      map[constants.DocumentCategory]error
	calls     int
}

func (s *categoryStubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	var category constants.DocumentCategory
	switch {
	case strings.Contains(prompt, "IDENTITY"):
		category = constants.CategoryIdentity
	case strings.Contains(prompt, "INVOICE"):
		category = constants.CategoryInvoice
	case strings.Contains(prompt, "SUPPORTING"):
		category = constants.CategorySupporting
	}
	if err := s.errs[category]; err != nil {
		return "", err
	}
	return s.responses[category], nil
}

func okResponse(valid bool, confidence float64) string {
	return fmt.Sprintf(`{"isValid": %t, "confidence": %v, "matchScore": %v, "findings": ["name matches"]}`, valid, confidence, confidence)
}

func testClaim() ClaimContext {
	return ClaimContext{
		FullName:         "Ada Obi",
		Email:            "ada@example.com",
		Phone:            "+1-555-0100",
		ClaimType:        "AUTO",
		IncidentDate:     "2026-02-01",
		IncidentLocation: "Denver, CO",
		Description:      "Hail damage to hood and roof.",
		Amount:           "1800.00",
	}
}

func TestVerify_AllCategories(t *testing.T) {
	gen := &categoryStubGenerator{responses: map[constants.DocumentCategory]string{
		constants.CategoryIdentity:   okResponse(true, 85),
		constants.CategoryInvoice:    okResponse(true, 90),
		constants.CategorySupporting: okResponse(true, 95),
	}}
	v := NewVerifier(gen, nil)

	summary, err := v.Verify(context.Background(), testClaim(), map[constants.DocumentCategory]DocumentInput{
		constants.CategoryIdentity:   {Text: "DRIVER LICENSE Ada Obi"},
		constants.CategoryInvoice:    {Text: "INVOICE total 1800.00"},
		constants.CategorySupporting: {Text: "photo annotations"},
	})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if summary.Status != constants.VerificationVerified {
		t.Errorf("status = %s, want VERIFIED", summary.Status)
	}
	if summary.OverallConfidence != 90 {
		t.Errorf("overall confidence = %v, want 90", summary.OverallConfidence)
	}
	if gen.calls != 3 {
		t.Errorf("expected 3 gateway calls, got %d", gen.calls)
	}
	if len(summary.Results) != 3 {
		t.Errorf("expected 3 category results, got %d", len(summary.Results))
	}
}

func TestVerify_OnlyPresentCategoriesProcessed(t *testing.T) {
	gen := &categoryStubGenerator{responses: map[constants.DocumentCategory]string{
		constants.CategoryInvoice: okResponse(true, 75),
	}}
	v := NewVerifier(gen, nil)

	summary, err := v.Verify(context.Background(), testClaim(), map[constants.DocumentCategory]DocumentInput{
		constants.CategoryInvoice: {Text: "INVOICE"},
	})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 gateway call, got %d", gen.calls)
	}
	if summary.Status != constants.VerificationNeedsReview {
		t.Errorf("status = %s, want NEEDS_REVIEW", summary.Status)
	}
}

func TestVerify_MalformedCategoryPropagates(t *testing.T) {
	gen := &categoryStubGenerator{responses: map[constants.DocumentCategory]string{
		constants.CategoryIdentity: okResponse(true, 88),
		constants.CategoryInvoice:  "cannot verify this one",
	}}
	v := NewVerifier(gen, nil)

	summary, err := v.Verify(context.Background(), testClaim(), map[constants.DocumentCategory]DocumentInput{
		constants.CategoryIdentity: {Text: "id card"},
		constants.CategoryInvoice:  {Text: "invoice"},
	})
	if err == nil {
		t.Fatal("expected category failure to propagate")
	}
	var cv *common.ContractViolation
	if !errors.As(err, &cv) {
		t.Fatalf("expected ContractViolation, got %T: %v", err, err)
	}
	if cv.Category != string(constants.CategoryInvoice) {
		t.Errorf("violation category = %q, want invoice", cv.Category)
	}
	// the completed category is still aggregated (best-effort partial result)
	if _, ok := summary.Results[constants.CategoryIdentity]; !ok {
		t.Error("expected identity result to survive the invoice failure")
	}
}

func TestVerify_UpstreamErrorPropagates(t *testing.T) {
	gen := &categoryStubGenerator{
		responses: map[constants.DocumentCategory]string{},
		errs: map[constants.DocumentCategory]error{
			constants.CategorySupporting: &common.UpstreamError{Stage: common.StageGenerate, Cause: errors.New("timeout")},
		},
	}
	v := NewVerifier(gen, nil)

	_, err := v.Verify(context.Background(), testClaim(), map[constants.DocumentCategory]DocumentInput{
		constants.CategorySupporting: {Text: "report"},
	})
	var ue *common.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestParseResult_ClampsScores(t *testing.T) {
	res, err := ParseResult(constants.CategoryInvoice, `{"isValid": true, "confidence": 140, "matchScore": -5, "findings": []}`)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if res.Confidence != 100 {
		t.Errorf("confidence = %v, want 100", res.Confidence)
	}
	if res.MatchScore != 0 {
		t.Errorf("matchScore = %v, want 0", res.MatchScore)
	}
}

func TestParseResult_MissingFieldIsViolation(t *testing.T) {
	_, err := ParseResult(constants.CategoryIdentity, `{"isValid": true, "confidence": 80}`)
	if err == nil {
		t.Fatal("expected contract violation for missing matchScore/findings")
	}
}
