package constants

import "strings"

// ClaimType is the line of business a claim is filed under.
type ClaimType string

const (
	ClaimTypeAuto   ClaimType = "AUTO"
	ClaimTypeHome   ClaimType = "HOME"
	ClaimTypeHealth ClaimType = "HEALTH"
	ClaimTypeLife   ClaimType = "LIFE"
	ClaimTypeTravel ClaimType = "TRAVEL"
	ClaimTypeOther  ClaimType = "OTHER"
)

var allClaimTypes = []ClaimType{
	ClaimTypeAuto,
	ClaimTypeHome,
	ClaimTypeHealth,
	ClaimTypeLife,
	ClaimTypeTravel,
	ClaimTypeOther,
}

func ClaimTypesAsStrings() []string {
	out := make([]string, len(allClaimTypes))
	for i, t := range allClaimTypes {
		out[i] = string(t)
	}
	return out
}

// ParseClaimType maps free-form input to a canonical claim type.
func ParseClaimType(input string) (ClaimType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, t := range allClaimTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return ClaimTypeOther, false
}

// ClaimStatus is the lifecycle status for rows in claims.
type ClaimStatus string

// Stable values (store these exact strings in DB).
const (
	ClaimStatusSubmitted ClaimStatus = "SUBMITTED" // persisted with a fraud result
	ClaimStatusInReview  ClaimStatus = "IN_REVIEW" // picked up by a reviewer
	ClaimStatusApproved  ClaimStatus = "APPROVED"  // terminal
	ClaimStatusRejected  ClaimStatus = "REJECTED"  // terminal
)

func ClaimStatusesAsStrings() []string {
	return []string{
		string(ClaimStatusSubmitted),
		string(ClaimStatusInReview),
		string(ClaimStatusApproved),
		string(ClaimStatusRejected),
	}
}
