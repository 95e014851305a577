package verify

import (
	"encoding/json"
	"math"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/llm"
)

// rawResult is the untrusted per-category shape off the generator.
type rawResult struct {
	IsValid    bool        `json:"isValid"`
	Confidence json.Number `json:"confidence"`
	MatchScore json.Number `json:"matchScore"`
	Findings   []string    `json:"findings"`
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

// ParseResult parses normalized generator output for one category. Unlike
// fraud scoring there is no repair-to-fallback here: a malformed response is
// a contract violation the caller must see, because masking a bad
// verification could wrongly mark a fraudulent claim as verified.
func ParseResult(category constants.DocumentCategory, normalized string) (entity.VerificationResult, error) {
	schema, err := resultSchema()
	if err != nil {
		return entity.VerificationResult{}, err
	}
	if err := llm.ValidateAgainstSchema(schema, []byte(normalized)); err != nil {
		return entity.VerificationResult{}, common.NewContractViolation(common.StageValidate, string(category), err.Error(), normalized)
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(normalized), &raw); err != nil {
		return entity.VerificationResult{}, common.NewContractViolation(common.StageParse, string(category), err.Error(), normalized)
	}

	conf, err := raw.Confidence.Float64()
	if err != nil {
		return entity.VerificationResult{}, common.NewContractViolation(common.StageParse, string(category), "confidence is not numeric", normalized)
	}
	match, err := raw.MatchScore.Float64()
	if err != nil {
		return entity.VerificationResult{}, common.NewContractViolation(common.StageParse, string(category), "matchScore is not numeric", normalized)
	}

	findings := raw.Findings
	if findings == nil {
		findings = []string{}
	}

	return entity.VerificationResult{
		Category:   category,
		IsValid:    raw.IsValid,
		Confidence: clampPercent(conf),
		MatchScore: clampPercent(match),
		Findings:   findings,
	}, nil
}

func clampPercent(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return f
}
