package constants

import "strings"

// DocumentCategory is one of the three document classes verified independently.
type DocumentCategory string

const (
	CategoryIdentity   DocumentCategory = "identity"
	CategoryInvoice    DocumentCategory = "invoice"
	CategorySupporting DocumentCategory = "supporting"
)

var allCategories = []DocumentCategory{CategoryIdentity, CategoryInvoice, CategorySupporting}

// Categories returns the canonical category order used for stable output.
func Categories() []DocumentCategory {
	out := make([]DocumentCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

func CategoriesAsStrings() []string {
	out := make([]string, len(allCategories))
	for i, c := range allCategories {
		out[i] = string(c)
	}
	return out
}

// ParseCategory maps free-form input to a canonical category.
func ParseCategory(input string) (DocumentCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, c := range allCategories {
		if normalized == string(c) {
			return c, true
		}
	}
	return "", false
}

// VerificationStatus is the aggregate outcome of document verification.
type VerificationStatus string

const (
	VerificationPending     VerificationStatus = "PENDING"
	VerificationVerified    VerificationStatus = "VERIFIED"
	VerificationNeedsReview VerificationStatus = "NEEDS_REVIEW"
	VerificationRejected    VerificationStatus = "REJECTED"
)

func VerificationStatusesAsStrings() []string {
	return []string{
		string(VerificationPending),
		string(VerificationVerified),
		string(VerificationNeedsReview),
		string(VerificationRejected),
	}
}
