package utils

import (
	"fmt"
	"time"

	claimspb "github.com/claimdesk/claims-intake/gen/proto/claims/v1"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/gen/ent"
	"github.com/claimdesk/claims-intake/internal/entity"
)

// ParseYMD parses a YYYY-MM-DD date string.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func ToClaim(c *ent.Claim) *entity.Claim {
	return &entity.Claim{
		ID:                 c.ID,
		FullName:           c.FullName,
		Email:              c.Email,
		Phone:              c.Phone,
		PolicyNumber:       c.PolicyNumber,
		ClaimType:          constants.ClaimType(c.ClaimType),
		IncidentDate:       c.IncidentDate,
		IncidentLocation:   c.IncidentLocation,
		Description:        c.Description,
		Amount:             c.ClaimAmount,
		Status:             constants.ClaimStatus(c.Status),
		FraudRiskScore:     c.FraudRiskScore,
		RiskLevel:          constants.RiskLevel(c.RiskLevel),
		Recommendation:     constants.Recommendation(c.Recommendation),
		KeyFindings:        c.KeyFindings,
		VerificationStatus: constants.VerificationStatus(c.VerificationStatus),
		OverallConfidence:  c.OverallConfidence,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func ToDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:            d.ID,
		ClaimID:       d.ClaimID,
		Category:      constants.DocumentCategory(d.Category),
		Filename:      d.Filename,
		ExtractedText: d.ExtractedText,
		StoragePath:   d.StoragePath,
		ContentType:   d.ContentType,
		FileSize:      d.FileSize,
		UploadedAt:    d.CreatedAt,
	}
}

func ToVerificationResult(v *ent.VerificationResult) *entity.VerificationResult {
	return &entity.VerificationResult{
		ID:         v.ID,
		ClaimID:    v.ClaimID,
		Category:   constants.DocumentCategory(v.Category),
		IsValid:    v.IsValid,
		Confidence: v.Confidence,
		MatchScore: v.MatchScore,
		Findings:   v.Findings,
		CreatedAt:  v.CreatedAt,
	}
}

func ToPBClaim(c *entity.Claim) *claimspb.Claim {
	return &claimspb.Claim{
		Id:                 c.ID.String(),
		FullName:           c.FullName,
		Email:              c.Email,
		Phone:              c.Phone,
		PolicyNumber:       c.PolicyNumber,
		ClaimType:          string(c.ClaimType),
		IncidentDate:       c.IncidentDate.Format("2006-01-02"),
		IncidentLocation:   c.IncidentLocation,
		Description:        c.Description,
		ClaimAmount:        fmt.Sprintf("%.2f", c.Amount),
		Status:             string(c.Status),
		FraudRiskScore:     int32(c.FraudRiskScore),
		RiskLevel:          string(c.RiskLevel),
		Recommendation:     string(c.Recommendation),
		KeyFindings:        c.KeyFindings,
		VerificationStatus: string(c.VerificationStatus),
		OverallConfidence:  c.OverallConfidence,
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.Document) *claimspb.Document {
	return &claimspb.Document{
		Id:          d.ID.String(),
		ClaimId:     d.ClaimID.String(),
		Category:    string(d.Category),
		Filename:    d.Filename,
		ContentType: d.ContentType,
		FileSize:    d.FileSize,
		UploadedAt:  d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBVerificationResult(v *entity.VerificationResult) *claimspb.VerificationResult {
	return &claimspb.VerificationResult{
		Category:   string(v.Category),
		IsValid:    v.IsValid,
		Confidence: v.Confidence,
		MatchScore: v.MatchScore,
		Findings:   v.Findings,
	}
}
