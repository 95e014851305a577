package verify

import (
	"fmt"
	"strings"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/llm"
)

// ClaimContext carries the claim fields documents are checked against.
type ClaimContext struct {
	FullName         string
	Email            string
	Phone            string
	PolicyNumber     string
	ClaimType        string
	IncidentDate     string
	IncidentLocation string
	Description      string
	Amount           string
}

// resultSchemaMap is the response contract for one category.
func resultSchemaMap() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isValid":    map[string]any{"type": "boolean"},
			"confidence": map[string]any{"type": "number"},
			"matchScore": map[string]any{"type": "number"},
			"findings":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{"isValid", "confidence", "matchScore", "findings"},
	}
}

// BuildPrompt renders the verification prompt for one document category.
// Each category compares the extracted text against its own slice of claim
// fields; the same inputs always produce the same prompt.
func BuildPrompt(category constants.DocumentCategory, claim ClaimContext, extractedText string) string {
	var task string
	switch category {
	case constants.CategoryIdentity:
		task = strings.Join([]string{
			"This is an IDENTITY document. Check that it belongs to the claimant.",
			"- Claimant name: " + claim.FullName,
			"- Claimant email: " + claim.Email,
			"- Claimant phone: " + claim.Phone,
		}, "\n")
	case constants.CategoryInvoice:
		task = strings.Join([]string{
			"This is an INVOICE. Check that it supports the claimed loss.",
			"- Claimed amount: " + claim.Amount,
			"- Incident date: " + claim.IncidentDate,
			"- Claim type: " + claim.ClaimType,
		}, "\n")
	case constants.CategorySupporting:
		task = strings.Join([]string{
			"This is SUPPORTING EVIDENCE. Check that it corroborates the incident.",
			"- Incident date: " + claim.IncidentDate,
			"- Incident location: " + claim.IncidentLocation,
			"- Claim type: " + claim.ClaimType,
			"- Incident description: " + claim.Description,
		}, "\n")
	default:
		task = "Check that this document is consistent with the claim."
	}

	parts := []string{
		"You are verifying a document submitted with an insurance claim.",
		"Return ONLY JSON that matches the provided JSON Schema. No prose, no markdown.",
		"isValid is false only when the document contradicts the claim or is clearly not the requested kind.",
		"confidence (0-100) is how certain you are in this assessment overall.",
		"matchScore (0-100) is how well the document's contents match the claim fields listed below.",
		"findings lists concrete matches and mismatches you observed.",
		"An empty or garbled transcript means low confidence, not an automatic isValid=false.",
		"",
		task,
		"",
		fmt.Sprintf("Document text extracted via OCR (%d chars):", len(extractedText)),
		truncateText(extractedText, 3000),
		"",
		"JSON Schema:",
		llm.MustJSON(resultSchemaMap()),
	}
	return strings.Join(parts, "\n")
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n…(truncated)"
}
