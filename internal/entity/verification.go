package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
)

// VerificationResult is the per-document outcome, immutable once stored.
type VerificationResult struct {
	ID         uuid.UUID                  `json:"id"`
	ClaimID    uuid.UUID                  `json:"claim_id"`
	Category   constants.DocumentCategory `json:"category"`
	IsValid    bool                       `json:"is_valid"`
	Confidence float64                    `json:"confidence"`
	MatchScore float64                    `json:"match_score"`
	Findings   []string                   `json:"findings"`
	CreatedAt  time.Time                  `json:"created_at"`
}

// VerificationSummary aggregates 0-3 category results into one status.
type VerificationSummary struct {
	OverallConfidence float64                                           `json:"overall_confidence"`
	Status            constants.VerificationStatus                      `json:"verification_status"`
	Results           map[constants.DocumentCategory]VerificationResult `json:"results"`
}
