package fraud

import (
	"context"
	"errors"
	"testing"

	"github.com/claimdesk/claims-intake/internal/common"
)

// stubGenerator plays back a canned response and counts calls.
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.response, s.err
}

func validFields() Fields {
	return Fields{
		ClaimType:        "AUTO",
		IncidentDate:     "2026-03-14",
		IncidentLocation: "Austin, TX",
		Description:      "Rear-ended at a stop light, bumper and trunk damage.",
		ClaimAmount:      "2450.00",
	}
}

func TestAnalyze_HappyPath(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"fraudRiskScore\": 22, \"riskLevel\": \"LOW\", \"keyFindings\": [\"consistent narrative\"], \"recommendation\": \"APPROVE\"}\n```"}
	a := NewAnalyzer(gen, nil)

	res, err := a.Analyze(context.Background(), validFields())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.FraudRiskScore != 22 || res.RiskLevel != "LOW" || res.Recommendation != "APPROVE" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestAnalyze_NonJSONFallsBack(t *testing.T) {
	gen := &stubGenerator{response: "I am unable to assess this claim right now."}
	a := NewAnalyzer(gen, nil)

	res, err := a.Analyze(context.Background(), validFields())
	if err != nil {
		t.Fatalf("fallback must not surface an error, got %v", err)
	}
	want := FallbackResult()
	if res.FraudRiskScore != want.FraudRiskScore || res.RiskLevel != want.RiskLevel || res.Recommendation != want.Recommendation {
		t.Errorf("expected fallback result, got %+v", res)
	}
	if len(res.KeyFindings) != 2 ||
		res.KeyFindings[0] != "Fraud analysis failed - manual review required" ||
		res.KeyFindings[1] != "Response parsing error - check logs for details" {
		t.Errorf("fallback findings wrong: %v", res.KeyFindings)
	}
}

func TestAnalyze_UpstreamErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection reset")}
	a := NewAnalyzer(gen, nil)

	res, err := a.Analyze(context.Background(), validFields())
	if err != nil {
		t.Fatalf("upstream failure must not surface, got %v", err)
	}
	if res.FraudRiskScore != 50 {
		t.Errorf("expected fallback score 50, got %d", res.FraudRiskScore)
	}
}

func TestAnalyze_MissingFieldFastFail(t *testing.T) {
	gen := &stubGenerator{response: `{"fraudRiskScore": 10, "keyFindings": []}`}
	a := NewAnalyzer(gen, nil)

	fields := validFields()
	fields.ClaimAmount = ""

	_, err := a.Analyze(context.Background(), fields)
	var mfe *common.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if len(mfe.Fields) != 1 || mfe.Fields[0] != "claimAmount" {
		t.Errorf("expected [claimAmount], got %v", mfe.Fields)
	}
	if gen.calls != 0 {
		t.Errorf("gateway must not be called on fast-fail, got %d calls", gen.calls)
	}
}

func TestAnalyze_MissingFieldsAllNamed(t *testing.T) {
	gen := &stubGenerator{}
	a := NewAnalyzer(gen, nil)

	_, err := a.Analyze(context.Background(), Fields{})
	var mfe *common.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if len(mfe.Fields) != 5 {
		t.Errorf("expected all five fields named, got %v", mfe.Fields)
	}
}
