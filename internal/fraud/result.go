package fraud

import (
	"encoding/json"
	"math"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/llm"
)

// Result is the validated fraud assessment for one claim. Score, level and
// recommendation are always mutually consistent after ParseResult.
type Result struct {
	FraudRiskScore int                      `json:"fraudRiskScore"`
	RiskLevel      constants.RiskLevel      `json:"riskLevel"`
	Recommendation constants.Recommendation `json:"recommendation"`
	KeyFindings    []string                 `json:"keyFindings"`
}

// rawResult is the untrusted shape straight off the generator.
type rawResult struct {
	FraudRiskScore json.Number `json:"fraudRiskScore"`
	RiskLevel      string      `json:"riskLevel"`
	Recommendation string      `json:"recommendation"`
	KeyFindings    []string    `json:"keyFindings"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func resultSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = llm.CompileSchema(resultSchemaMap())
	})
	return compiledSchema, schemaErr
}

// ParseResult parses normalized generator output into a Result, coercing
// inconsistent values to canonical form. A missing/non-numeric score or a
// malformed findings list is a contract violation; level and recommendation
// are repaired instead.
func ParseResult(normalized string) (Result, error) {
	schema, err := resultSchema()
	if err != nil {
		return Result{}, err
	}
	if err := llm.ValidateAgainstSchema(schema, []byte(normalized)); err != nil {
		return Result{}, common.NewContractViolation(common.StageValidate, "", err.Error(), normalized)
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(normalized), &raw); err != nil {
		return Result{}, common.NewContractViolation(common.StageParse, "", err.Error(), normalized)
	}

	f, err := raw.FraudRiskScore.Float64()
	if err != nil {
		return Result{}, common.NewContractViolation(common.StageParse, "", "fraudRiskScore is not numeric", normalized)
	}
	score := clampScore(f)

	// A valid-and-consistent generator level equals the band for the clamped
	// score, so recomputing covers the invalid and inconsistent cases at once.
	level := constants.RiskLevelForScore(score)

	rec, ok := parseRecommendation(raw.Recommendation)
	if !ok {
		rec = constants.RecommendationForLevel(level)
	}

	findings := raw.KeyFindings
	if findings == nil {
		findings = []string{}
	}

	return Result{
		FraudRiskScore: score,
		RiskLevel:      level,
		Recommendation: rec,
		KeyFindings:    findings,
	}, nil
}

func clampScore(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	s := int(math.Round(f))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func parseRecommendation(s string) (constants.Recommendation, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(constants.RecommendationApprove):
		return constants.RecommendationApprove, true
	case string(constants.RecommendationReview):
		return constants.RecommendationReview, true
	case string(constants.RecommendationReject):
		return constants.RecommendationReject, true
	default:
		return "", false
	}
}
