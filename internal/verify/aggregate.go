package verify

import (
	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/entity"
)

// Two-tier confidence policy. A single 70% cutoff existed historically and
// was dropped; this is the authoritative policy.
const (
	VerifiedThreshold    = 80.0
	NeedsReviewThreshold = 50.0
)

// Aggregate combines 0-3 per-category results into one summary.
// overall_confidence is the arithmetic mean over categories that produced a
// result (0 if none). Status rules, evaluated in order: no results PENDING;
// any invalid REJECTED; >= 80 VERIFIED; >= 50 NEEDS_REVIEW; else REJECTED.
func Aggregate(results map[constants.DocumentCategory]entity.VerificationResult) entity.VerificationSummary {
	summary := entity.VerificationSummary{Results: results}

	if len(results) == 0 {
		summary.Status = constants.VerificationPending
		return summary
	}

	var sum float64
	anyInvalid := false
	for _, r := range results {
		sum += r.Confidence
		if !r.IsValid {
			anyInvalid = true
		}
	}
	summary.OverallConfidence = sum / float64(len(results))

	switch {
	case anyInvalid:
		// an explicit contradiction overrides any confidence level
		summary.Status = constants.VerificationRejected
	case summary.OverallConfidence >= VerifiedThreshold:
		summary.Status = constants.VerificationVerified
	case summary.OverallConfidence >= NeedsReviewThreshold:
		summary.Status = constants.VerificationNeedsReview
	default:
		summary.Status = constants.VerificationRejected
	}
	return summary
}
