package verify

import (
	"math"
	"testing"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/entity"
)

func result(valid bool, confidence float64) entity.VerificationResult {
	return entity.VerificationResult{IsValid: valid, Confidence: confidence, MatchScore: confidence}
}

func TestAggregate_NoCategoriesPending(t *testing.T) {
	s := Aggregate(map[constants.DocumentCategory]entity.VerificationResult{})
	if s.Status != constants.VerificationPending {
		t.Errorf("status = %s, want PENDING", s.Status)
	}
	if s.OverallConfidence != 0 {
		t.Errorf("confidence = %v, want 0", s.OverallConfidence)
	}
}

func TestAggregate_InvalidOverridesHighConfidence(t *testing.T) {
	s := Aggregate(map[constants.DocumentCategory]entity.VerificationResult{
		constants.CategoryIdentity:   result(false, 95),
		constants.CategoryInvoice:    result(true, 90),
		constants.CategorySupporting: result(true, 85),
	})
	if s.Status != constants.VerificationRejected {
		t.Errorf("status = %s, want REJECTED", s.Status)
	}
}

func TestAggregate_AllValidHighConfidenceVerified(t *testing.T) {
	s := Aggregate(map[constants.DocumentCategory]entity.VerificationResult{
		constants.CategoryIdentity:   result(true, 85),
		constants.CategoryInvoice:    result(true, 90),
		constants.CategorySupporting: result(true, 95),
	})
	if got := s.OverallConfidence; math.Abs(got-90) > 1e-9 {
		t.Errorf("overall confidence = %v, want 90", got)
	}
	if s.Status != constants.VerificationVerified {
		t.Errorf("status = %s, want VERIFIED", s.Status)
	}
}

func TestAggregate_MidConfidenceNeedsReview(t *testing.T) {
	s := Aggregate(map[constants.DocumentCategory]entity.VerificationResult{
		constants.CategoryIdentity:   result(true, 60),
		constants.CategoryInvoice:    result(true, 55),
		constants.CategorySupporting: result(true, 50),
	})
	if got := s.OverallConfidence; math.Abs(got-55) > 1e-9 {
		t.Errorf("overall confidence = %v, want 55", got)
	}
	if s.Status != constants.VerificationNeedsReview {
		t.Errorf("status = %s, want NEEDS_REVIEW", s.Status)
	}
}

func TestAggregate_LowConfidenceRejected(t *testing.T) {
	s := Aggregate(map[constants.DocumentCategory]entity.VerificationResult{
		constants.CategoryIdentity: result(true, 20),
	})
	if s.Status != constants.VerificationRejected {
		t.Errorf("status = %s, want REJECTED", s.Status)
	}
}

func TestAggregate_Thresholds(t *testing.T) {
	cases := []struct {
		confidence float64
		want       constants.VerificationStatus
	}{
		{80, constants.VerificationVerified},
		{79.9, constants.VerificationNeedsReview},
		{50, constants.VerificationNeedsReview},
		{49.9, constants.VerificationRejected},
	}
	for _, tc := range cases {
		s := Aggregate(map[constants.DocumentCategory]entity.VerificationResult{
			constants.CategoryInvoice: result(true, tc.confidence),
		})
		if s.Status != tc.want {
			t.Errorf("confidence %v: status = %s, want %s", tc.confidence, s.Status, tc.want)
		}
	}
}

func TestAggregate_SingleCategoryMean(t *testing.T) {
	s := Aggregate(map[constants.DocumentCategory]entity.VerificationResult{
		constants.CategorySupporting: result(true, 73),
	})
	if s.OverallConfidence != 73 {
		t.Errorf("confidence = %v, want 73", s.OverallConfidence)
	}
}
