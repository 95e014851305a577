package constants

// RiskLevel buckets a 0-100 fraud risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// Band boundaries: 40 and 70 both belong to MEDIUM.
const (
	RiskLowUpperBound    = 40
	RiskMediumUpperBound = 70
)

// RiskLevelForScore maps a clamped score onto its band.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score < RiskLowUpperBound:
		return RiskLevelLow
	case score <= RiskMediumUpperBound:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// Recommendation is the suggested reviewer action for a fraud result.
type Recommendation string

const (
	RecommendationApprove Recommendation = "APPROVE"
	RecommendationReview  Recommendation = "REVIEW"
	RecommendationReject  Recommendation = "REJECT"
)

// RecommendationForLevel derives the action a risk level implies.
func RecommendationForLevel(level RiskLevel) Recommendation {
	switch level {
	case RiskLevelLow:
		return RecommendationApprove
	case RiskLevelHigh:
		return RecommendationReject
	default:
		return RecommendationReview
	}
}

func RiskLevelsAsStrings() []string {
	return []string{string(RiskLevelLow), string(RiskLevelMedium), string(RiskLevelHigh)}
}
