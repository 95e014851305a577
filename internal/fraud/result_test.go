package fraud

import (
	"fmt"
	"testing"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/llm"
)

func TestRiskBands_AllScores(t *testing.T) {
	for s := 0; s <= 100; s++ {
		var wantLevel constants.RiskLevel
		var wantRec constants.Recommendation
		switch {
		case s < 40:
			wantLevel, wantRec = constants.RiskLevelLow, constants.RecommendationApprove
		case s <= 70:
			wantLevel, wantRec = constants.RiskLevelMedium, constants.RecommendationReview
		default:
			wantLevel, wantRec = constants.RiskLevelHigh, constants.RecommendationReject
		}
		if got := constants.RiskLevelForScore(s); got != wantLevel {
			t.Errorf("RiskLevelForScore(%d) = %s, want %s", s, got, wantLevel)
		}
		if got := constants.RecommendationForLevel(constants.RiskLevelForScore(s)); got != wantRec {
			t.Errorf("recommendation for score %d = %s, want %s", s, got, wantRec)
		}
	}
}

func TestParseResult_RepairsInconsistentLevel(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		wantScore int
		wantLevel constants.RiskLevel
		wantRec   constants.Recommendation
	}{
		{
			name:      "level contradicts score",
			payload:   `{"fraudRiskScore": 85, "riskLevel": "LOW", "keyFindings": ["amount spike"], "recommendation": "APPROVE"}`,
			wantScore: 85,
			wantLevel: constants.RiskLevelHigh,
			wantRec:   constants.RecommendationApprove, // valid value stands; only invalid ones are recomputed
		},
		{
			name:      "garbage level and recommendation",
			payload:   `{"fraudRiskScore": 12, "riskLevel": "banana", "keyFindings": [], "recommendation": "maybe"}`,
			wantScore: 12,
			wantLevel: constants.RiskLevelLow,
			wantRec:   constants.RecommendationApprove,
		},
		{
			name:      "boundary 40 is medium",
			payload:   `{"fraudRiskScore": 40, "riskLevel": "LOW", "keyFindings": []}`,
			wantScore: 40,
			wantLevel: constants.RiskLevelMedium,
			wantRec:   constants.RecommendationReview,
		},
		{
			name:      "boundary 70 is medium",
			payload:   `{"fraudRiskScore": 70, "riskLevel": "HIGH", "keyFindings": []}`,
			wantScore: 70,
			wantLevel: constants.RiskLevelMedium,
			wantRec:   constants.RecommendationReview,
		},
		{
			name:      "score above range clamps to 100",
			payload:   `{"fraudRiskScore": 240, "keyFindings": ["x"]}`,
			wantScore: 100,
			wantLevel: constants.RiskLevelHigh,
			wantRec:   constants.RecommendationReject,
		},
		{
			name:      "negative score clamps to 0",
			payload:   `{"fraudRiskScore": -3, "keyFindings": []}`,
			wantScore: 0,
			wantLevel: constants.RiskLevelLow,
			wantRec:   constants.RecommendationApprove,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ParseResult(llm.Normalize(tc.payload))
			if err != nil {
				t.Fatalf("ParseResult: %v", err)
			}
			if res.FraudRiskScore != tc.wantScore {
				t.Errorf("score = %d, want %d", res.FraudRiskScore, tc.wantScore)
			}
			if res.RiskLevel != tc.wantLevel {
				t.Errorf("level = %s, want %s", res.RiskLevel, tc.wantLevel)
			}
			if res.Recommendation != tc.wantRec {
				t.Errorf("recommendation = %s, want %s", res.Recommendation, tc.wantRec)
			}
		})
	}
}

func TestParseResult_ContractViolations(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", "the claim looks fine to me"},
		{"score missing", `{"riskLevel": "LOW", "keyFindings": []}`},
		{"score not numeric", `{"fraudRiskScore": "high", "keyFindings": []}`},
		{"findings not a list", `{"fraudRiskScore": 10, "keyFindings": "all good"}`},
		{"findings mixed types", `{"fraudRiskScore": 10, "keyFindings": ["ok", 42]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseResult(llm.Normalize(tc.payload)); err == nil {
				t.Errorf("expected contract violation for %q", tc.payload)
			}
		})
	}
}

func TestParseResult_ScoreLevelInvariant(t *testing.T) {
	// Whatever level the generator claims, validated output stays consistent.
	for s := 0; s <= 100; s += 5 {
		for _, claimed := range []string{"LOW", "MEDIUM", "HIGH", "bogus", ""} {
			payload := fmt.Sprintf(`{"fraudRiskScore": %d, "riskLevel": %q, "keyFindings": []}`, s, claimed)
			res, err := ParseResult(payload)
			if err != nil {
				t.Fatalf("ParseResult(%s): %v", payload, err)
			}
			if res.RiskLevel != constants.RiskLevelForScore(res.FraudRiskScore) {
				t.Errorf("score %d claimed %q: level %s breaks invariant", s, claimed, res.RiskLevel)
			}
		}
	}
}
