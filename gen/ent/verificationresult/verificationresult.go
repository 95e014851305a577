// Code generated by ent, DO NOT EDIT.

package verificationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verificationresult type in the database.
	Label = "verification_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClaimID holds the string denoting the claim_id field in the database.
	FieldClaimID = "claim_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldMatchScore holds the string denoting the match_score field in the database.
	FieldMatchScore = "match_score"
	// FieldFindings holds the string denoting the findings field in the database.
	FieldFindings = "findings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeClaim holds the string denoting the claim edge name in mutations.
	EdgeClaim = "claim"
	// Table holds the table name of the verificationresult in the database.
	Table = "verification_results"
	// ClaimTable is the table that holds the claim relation/edge.
	ClaimTable = "verification_results"
	// ClaimInverseTable is the table name for the Claim entity.
	// It exists in this package in order to avoid circular dependency with the "claim" package.
	ClaimInverseTable = "claims"
	// ClaimColumn is the table column denoting the claim relation/edge.
	ClaimColumn = "claim_id"
)

// Columns holds all SQL columns for verificationresult fields.
var Columns = []string{
	FieldID,
	FieldClaimID,
	FieldCategory,
	FieldIsValid,
	FieldConfidence,
	FieldMatchScore,
	FieldFindings,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultMatchScore holds the default value on creation for the "match_score" field.
	DefaultMatchScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VerificationResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClaimID orders the results by the claim_id field.
func ByClaimID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByMatchScore orders the results by the match_score field.
func ByMatchScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClaimField orders the results by claim field.
func ByClaimField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClaimStep(), sql.OrderByField(field, opts...))
	}
}
func newClaimStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClaimInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
	)
}
