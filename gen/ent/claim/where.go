// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/claimdesk/claims-intake/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldID, id))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFullName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPhone, v))
}

// PolicyNumber applies equality check predicate on the "policy_number" field. It's identical to PolicyNumberEQ.
func PolicyNumber(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPolicyNumber, v))
}

// ClaimType applies equality check predicate on the "claim_type" field. It's identical to ClaimTypeEQ.
func ClaimType(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimType, v))
}

// IncidentDate applies equality check predicate on the "incident_date" field. It's identical to IncidentDateEQ.
func IncidentDate(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldIncidentDate, v))
}

// IncidentLocation applies equality check predicate on the "incident_location" field. It's identical to IncidentLocationEQ.
func IncidentLocation(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldIncidentLocation, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldDescription, v))
}

// ClaimAmount applies equality check predicate on the "claim_amount" field. It's identical to ClaimAmountEQ.
func ClaimAmount(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatus, v))
}

// FraudRiskScore applies equality check predicate on the "fraud_risk_score" field. It's identical to FraudRiskScoreEQ.
func FraudRiskScore(v int) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFraudRiskScore, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldRiskLevel, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldRecommendation, v))
}

// VerificationStatus applies equality check predicate on the "verification_status" field. It's identical to VerificationStatusEQ.
func VerificationStatus(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldVerificationStatus, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOverallConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldFullName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldPhone, v))
}

// PolicyNumberEQ applies the EQ predicate on the "policy_number" field.
func PolicyNumberEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPolicyNumber, v))
}

// PolicyNumberNEQ applies the NEQ predicate on the "policy_number" field.
func PolicyNumberNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldPolicyNumber, v))
}

// PolicyNumberIn applies the In predicate on the "policy_number" field.
func PolicyNumberIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldPolicyNumber, vs...))
}

// PolicyNumberNotIn applies the NotIn predicate on the "policy_number" field.
func PolicyNumberNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldPolicyNumber, vs...))
}

// PolicyNumberGT applies the GT predicate on the "policy_number" field.
func PolicyNumberGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldPolicyNumber, v))
}

// PolicyNumberGTE applies the GTE predicate on the "policy_number" field.
func PolicyNumberGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldPolicyNumber, v))
}

// PolicyNumberLT applies the LT predicate on the "policy_number" field.
func PolicyNumberLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldPolicyNumber, v))
}

// PolicyNumberLTE applies the LTE predicate on the "policy_number" field.
func PolicyNumberLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldPolicyNumber, v))
}

// PolicyNumberContains applies the Contains predicate on the "policy_number" field.
func PolicyNumberContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldPolicyNumber, v))
}

// PolicyNumberHasPrefix applies the HasPrefix predicate on the "policy_number" field.
func PolicyNumberHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldPolicyNumber, v))
}

// PolicyNumberHasSuffix applies the HasSuffix predicate on the "policy_number" field.
func PolicyNumberHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldPolicyNumber, v))
}

// PolicyNumberEqualFold applies the EqualFold predicate on the "policy_number" field.
func PolicyNumberEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldPolicyNumber, v))
}

// PolicyNumberContainsFold applies the ContainsFold predicate on the "policy_number" field.
func PolicyNumberContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldPolicyNumber, v))
}

// ClaimTypeEQ applies the EQ predicate on the "claim_type" field.
func ClaimTypeEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimType, v))
}

// ClaimTypeNEQ applies the NEQ predicate on the "claim_type" field.
func ClaimTypeNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimType, v))
}

// ClaimTypeIn applies the In predicate on the "claim_type" field.
func ClaimTypeIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimType, vs...))
}

// ClaimTypeNotIn applies the NotIn predicate on the "claim_type" field.
func ClaimTypeNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimType, vs...))
}

// ClaimTypeGT applies the GT predicate on the "claim_type" field.
func ClaimTypeGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimType, v))
}

// ClaimTypeGTE applies the GTE predicate on the "claim_type" field.
func ClaimTypeGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimType, v))
}

// ClaimTypeLT applies the LT predicate on the "claim_type" field.
func ClaimTypeLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimType, v))
}

// ClaimTypeLTE applies the LTE predicate on the "claim_type" field.
func ClaimTypeLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimType, v))
}

// ClaimTypeContains applies the Contains predicate on the "claim_type" field.
func ClaimTypeContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldClaimType, v))
}

// ClaimTypeHasPrefix applies the HasPrefix predicate on the "claim_type" field.
func ClaimTypeHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldClaimType, v))
}

// ClaimTypeHasSuffix applies the HasSuffix predicate on the "claim_type" field.
func ClaimTypeHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldClaimType, v))
}

// ClaimTypeEqualFold applies the EqualFold predicate on the "claim_type" field.
func ClaimTypeEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldClaimType, v))
}

// ClaimTypeContainsFold applies the ContainsFold predicate on the "claim_type" field.
func ClaimTypeContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldClaimType, v))
}

// IncidentDateEQ applies the EQ predicate on the "incident_date" field.
func IncidentDateEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldIncidentDate, v))
}

// IncidentDateNEQ applies the NEQ predicate on the "incident_date" field.
func IncidentDateNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldIncidentDate, v))
}

// IncidentDateIn applies the In predicate on the "incident_date" field.
func IncidentDateIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldIncidentDate, vs...))
}

// IncidentDateNotIn applies the NotIn predicate on the "incident_date" field.
func IncidentDateNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldIncidentDate, vs...))
}

// IncidentDateGT applies the GT predicate on the "incident_date" field.
func IncidentDateGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldIncidentDate, v))
}

// IncidentDateGTE applies the GTE predicate on the "incident_date" field.
func IncidentDateGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldIncidentDate, v))
}

// IncidentDateLT applies the LT predicate on the "incident_date" field.
func IncidentDateLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldIncidentDate, v))
}

// IncidentDateLTE applies the LTE predicate on the "incident_date" field.
func IncidentDateLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldIncidentDate, v))
}

// IncidentLocationEQ applies the EQ predicate on the "incident_location" field.
func IncidentLocationEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldIncidentLocation, v))
}

// IncidentLocationNEQ applies the NEQ predicate on the "incident_location" field.
func IncidentLocationNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldIncidentLocation, v))
}

// IncidentLocationIn applies the In predicate on the "incident_location" field.
func IncidentLocationIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldIncidentLocation, vs...))
}

// IncidentLocationNotIn applies the NotIn predicate on the "incident_location" field.
func IncidentLocationNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldIncidentLocation, vs...))
}

// IncidentLocationGT applies the GT predicate on the "incident_location" field.
func IncidentLocationGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldIncidentLocation, v))
}

// IncidentLocationGTE applies the GTE predicate on the "incident_location" field.
func IncidentLocationGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldIncidentLocation, v))
}

// IncidentLocationLT applies the LT predicate on the "incident_location" field.
func IncidentLocationLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldIncidentLocation, v))
}

// IncidentLocationLTE applies the LTE predicate on the "incident_location" field.
func IncidentLocationLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldIncidentLocation, v))
}

// IncidentLocationContains applies the Contains predicate on the "incident_location" field.
func IncidentLocationContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldIncidentLocation, v))
}

// IncidentLocationHasPrefix applies the HasPrefix predicate on the "incident_location" field.
func IncidentLocationHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldIncidentLocation, v))
}

// IncidentLocationHasSuffix applies the HasSuffix predicate on the "incident_location" field.
func IncidentLocationHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldIncidentLocation, v))
}

// IncidentLocationEqualFold applies the EqualFold predicate on the "incident_location" field.
func IncidentLocationEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldIncidentLocation, v))
}

// IncidentLocationContainsFold applies the ContainsFold predicate on the "incident_location" field.
func IncidentLocationContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldIncidentLocation, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldDescription, v))
}

// ClaimAmountEQ applies the EQ predicate on the "claim_amount" field.
func ClaimAmountEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimAmount, v))
}

// ClaimAmountNEQ applies the NEQ predicate on the "claim_amount" field.
func ClaimAmountNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimAmount, v))
}

// ClaimAmountIn applies the In predicate on the "claim_amount" field.
func ClaimAmountIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimAmount, vs...))
}

// ClaimAmountNotIn applies the NotIn predicate on the "claim_amount" field.
func ClaimAmountNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimAmount, vs...))
}

// ClaimAmountGT applies the GT predicate on the "claim_amount" field.
func ClaimAmountGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimAmount, v))
}

// ClaimAmountGTE applies the GTE predicate on the "claim_amount" field.
func ClaimAmountGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimAmount, v))
}

// ClaimAmountLT applies the LT predicate on the "claim_amount" field.
func ClaimAmountLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimAmount, v))
}

// ClaimAmountLTE applies the LTE predicate on the "claim_amount" field.
func ClaimAmountLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldStatus, v))
}

// FraudRiskScoreEQ applies the EQ predicate on the "fraud_risk_score" field.
func FraudRiskScoreEQ(v int) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldFraudRiskScore, v))
}

// FraudRiskScoreNEQ applies the NEQ predicate on the "fraud_risk_score" field.
func FraudRiskScoreNEQ(v int) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldFraudRiskScore, v))
}

// FraudRiskScoreIn applies the In predicate on the "fraud_risk_score" field.
func FraudRiskScoreIn(vs ...int) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldFraudRiskScore, vs...))
}

// FraudRiskScoreNotIn applies the NotIn predicate on the "fraud_risk_score" field.
func FraudRiskScoreNotIn(vs ...int) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldFraudRiskScore, vs...))
}

// FraudRiskScoreGT applies the GT predicate on the "fraud_risk_score" field.
func FraudRiskScoreGT(v int) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldFraudRiskScore, v))
}

// FraudRiskScoreGTE applies the GTE predicate on the "fraud_risk_score" field.
func FraudRiskScoreGTE(v int) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldFraudRiskScore, v))
}

// FraudRiskScoreLT applies the LT predicate on the "fraud_risk_score" field.
func FraudRiskScoreLT(v int) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldFraudRiskScore, v))
}

// FraudRiskScoreLTE applies the LTE predicate on the "fraud_risk_score" field.
func FraudRiskScoreLTE(v int) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldFraudRiskScore, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelIsNil applies the IsNil predicate on the "risk_level" field.
func RiskLevelIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldRiskLevel))
}

// RiskLevelNotNil applies the NotNil predicate on the "risk_level" field.
func RiskLevelNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldRiskLevel))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldRiskLevel, v))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationIsNil applies the IsNil predicate on the "recommendation" field.
func RecommendationIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldRecommendation))
}

// RecommendationNotNil applies the NotNil predicate on the "recommendation" field.
func RecommendationNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldRecommendation))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldRecommendation, v))
}

// KeyFindingsIsNil applies the IsNil predicate on the "key_findings" field.
func KeyFindingsIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldKeyFindings))
}

// KeyFindingsNotNil applies the NotNil predicate on the "key_findings" field.
func KeyFindingsNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldKeyFindings))
}

// VerificationStatusEQ applies the EQ predicate on the "verification_status" field.
func VerificationStatusEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldVerificationStatus, v))
}

// VerificationStatusNEQ applies the NEQ predicate on the "verification_status" field.
func VerificationStatusNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldVerificationStatus, v))
}

// VerificationStatusIn applies the In predicate on the "verification_status" field.
func VerificationStatusIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldVerificationStatus, vs...))
}

// VerificationStatusNotIn applies the NotIn predicate on the "verification_status" field.
func VerificationStatusNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldVerificationStatus, vs...))
}

// VerificationStatusGT applies the GT predicate on the "verification_status" field.
func VerificationStatusGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldVerificationStatus, v))
}

// VerificationStatusGTE applies the GTE predicate on the "verification_status" field.
func VerificationStatusGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldVerificationStatus, v))
}

// VerificationStatusLT applies the LT predicate on the "verification_status" field.
func VerificationStatusLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldVerificationStatus, v))
}

// VerificationStatusLTE applies the LTE predicate on the "verification_status" field.
func VerificationStatusLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldVerificationStatus, v))
}

// VerificationStatusContains applies the Contains predicate on the "verification_status" field.
func VerificationStatusContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldVerificationStatus, v))
}

// VerificationStatusHasPrefix applies the HasPrefix predicate on the "verification_status" field.
func VerificationStatusHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldVerificationStatus, v))
}

// VerificationStatusHasSuffix applies the HasSuffix predicate on the "verification_status" field.
func VerificationStatusHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldVerificationStatus, v))
}

// VerificationStatusEqualFold applies the EqualFold predicate on the "verification_status" field.
func VerificationStatusEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldVerificationStatus, v))
}

// VerificationStatusContainsFold applies the ContainsFold predicate on the "verification_status" field.
func VerificationStatusContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldVerificationStatus, v))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float64) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float64) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldOverallConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerifications applies the HasEdge predicate on the "verifications" edge.
func HasVerifications() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationsWith applies the HasEdge predicate on the "verifications" edge with a given conditions (other predicates).
func HasVerificationsWith(preds ...predicate.VerificationResult) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newVerificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.NotPredicates(p))
}
