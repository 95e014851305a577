package fraud

import (
	"strings"

	"github.com/claimdesk/claims-intake/internal/llm"
)

// resultSchemaMap is the response contract sent to the generator and enforced
// locally. riskLevel and recommendation are repairable, so only the score and
// findings are hard requirements.
func resultSchemaMap() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			// no minimum/maximum: out-of-range scores are clamped, not rejected
			"fraudRiskScore": map[string]any{"type": "number"},
			"riskLevel":      map[string]any{"type": "string"},
			"keyFindings":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"recommendation": map[string]any{"type": "string"},
		},
		"required": []string{"fraudRiskScore", "keyFindings"},
	}
}

// BuildPrompt renders the fraud-scoring prompt for one claim. Deterministic:
// the same fields always produce the same prompt.
func BuildPrompt(f Fields) string {
	parts := []string{
		"You are an insurance fraud analyst. Assess the fraud risk of the claim below.",
		"Return ONLY JSON that matches the provided JSON Schema. No prose, no markdown.",
		"fraudRiskScore is an integer 0-100 (0 = clearly legitimate, 100 = almost certainly fraudulent).",
		"riskLevel must be LOW, MEDIUM or HIGH; recommendation must be APPROVE, REVIEW or REJECT.",
		"keyFindings lists concrete observations supporting the score, most significant first.",
		"Consider: inconsistencies between amount and claim type, vague or templated descriptions,",
		"implausible dates or locations, and language typical of staged incidents.",
		"",
		"Claim:",
		"- Type: " + f.ClaimType,
		"- Incident date: " + f.IncidentDate,
		"- Incident location: " + f.IncidentLocation,
		"- Claimed amount: " + f.ClaimAmount,
		"- Description: " + f.Description,
		"",
		"JSON Schema:",
		llm.MustJSON(resultSchemaMap()),
	}
	return strings.Join(parts, "\n")
}
