package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
)

// Claim represents a claim for data transfer between layers.
type Claim struct {
	ID                 uuid.UUID                    `json:"id"`
	FullName           string                       `json:"full_name"`
	Email              string                       `json:"email"`
	Phone              string                       `json:"phone"`
	PolicyNumber       string                       `json:"policy_number"`
	ClaimType          constants.ClaimType          `json:"claim_type"`
	IncidentDate       time.Time                    `json:"incident_date"`
	IncidentLocation   string                       `json:"incident_location"`
	Description        string                       `json:"description"`
	Amount             float64                      `json:"amount"`
	Status             constants.ClaimStatus        `json:"status"`
	FraudRiskScore     int                          `json:"fraud_risk_score"`
	RiskLevel          constants.RiskLevel          `json:"risk_level"`
	Recommendation     constants.Recommendation     `json:"recommendation"`
	KeyFindings        []string                     `json:"key_findings"`
	VerificationStatus constants.VerificationStatus `json:"verification_status"`
	OverallConfidence  float64                      `json:"overall_confidence"`
	CreatedAt          time.Time                    `json:"created_at"`
	UpdatedAt          time.Time                    `json:"updated_at"`
}
