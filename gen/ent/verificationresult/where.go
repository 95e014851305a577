// Code generated by ent, DO NOT EDIT.

package verificationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/claimdesk/claims-intake/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldID, id))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldClaimID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldCategory, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldIsValid, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldConfidence, v))
}

// MatchScore applies equality check predicate on the "match_score" field. It's identical to MatchScoreEQ.
func MatchScore(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldMatchScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...uuid.UUID) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldClaimID, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldContainsFold(FieldCategory, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldIsValid, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldConfidence, v))
}

// MatchScoreEQ applies the EQ predicate on the "match_score" field.
func MatchScoreEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldMatchScore, v))
}

// MatchScoreNEQ applies the NEQ predicate on the "match_score" field.
func MatchScoreNEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldMatchScore, v))
}

// MatchScoreIn applies the In predicate on the "match_score" field.
func MatchScoreIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldMatchScore, vs...))
}

// MatchScoreNotIn applies the NotIn predicate on the "match_score" field.
func MatchScoreNotIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldMatchScore, vs...))
}

// MatchScoreGT applies the GT predicate on the "match_score" field.
func MatchScoreGT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldMatchScore, v))
}

// MatchScoreGTE applies the GTE predicate on the "match_score" field.
func MatchScoreGTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldMatchScore, v))
}

// MatchScoreLT applies the LT predicate on the "match_score" field.
func MatchScoreLT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldMatchScore, v))
}

// MatchScoreLTE applies the LTE predicate on the "match_score" field.
func MatchScoreLTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldMatchScore, v))
}

// FindingsIsNil applies the IsNil predicate on the "findings" field.
func FindingsIsNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIsNull(FieldFindings))
}

// FindingsNotNil applies the NotNil predicate on the "findings" field.
func FindingsNotNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotNull(FieldFindings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClaim applies the HasEdge predicate on the "claim" edge.
func HasClaim() predicate.VerificationResult {
	return predicate.VerificationResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimWith applies the HasEdge predicate on the "claim" edge with a given conditions (other predicates).
func HasClaimWith(preds ...predicate.Claim) predicate.VerificationResult {
	return predicate.VerificationResult(func(s *sql.Selector) {
		step := newClaimStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationResult) predicate.VerificationResult {
	return predicate.VerificationResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationResult) predicate.VerificationResult {
	return predicate.VerificationResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationResult) predicate.VerificationResult {
	return predicate.VerificationResult(sql.NotPredicates(p))
}
