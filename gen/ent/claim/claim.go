// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the claim type in the database.
	Label = "claim"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldPolicyNumber holds the string denoting the policy_number field in the database.
	FieldPolicyNumber = "policy_number"
	// FieldClaimType holds the string denoting the claim_type field in the database.
	FieldClaimType = "claim_type"
	// FieldIncidentDate holds the string denoting the incident_date field in the database.
	FieldIncidentDate = "incident_date"
	// FieldIncidentLocation holds the string denoting the incident_location field in the database.
	FieldIncidentLocation = "incident_location"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldClaimAmount holds the string denoting the claim_amount field in the database.
	FieldClaimAmount = "claim_amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFraudRiskScore holds the string denoting the fraud_risk_score field in the database.
	FieldFraudRiskScore = "fraud_risk_score"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldKeyFindings holds the string denoting the key_findings field in the database.
	FieldKeyFindings = "key_findings"
	// FieldVerificationStatus holds the string denoting the verification_status field in the database.
	FieldVerificationStatus = "verification_status"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeVerifications holds the string denoting the verifications edge name in mutations.
	EdgeVerifications = "verifications"
	// Table holds the table name of the claim in the database.
	Table = "claims"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "claim_id"
	// VerificationsTable is the table that holds the verifications relation/edge.
	VerificationsTable = "verification_results"
	// VerificationsInverseTable is the table name for the VerificationResult entity.
	// It exists in this package in order to avoid circular dependency with the "verificationresult" package.
	VerificationsInverseTable = "verification_results"
	// VerificationsColumn is the table column denoting the verifications relation/edge.
	VerificationsColumn = "claim_id"
)

// Columns holds all SQL columns for claim fields.
var Columns = []string{
	FieldID,
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldPolicyNumber,
	FieldClaimType,
	FieldIncidentDate,
	FieldIncidentLocation,
	FieldDescription,
	FieldClaimAmount,
	FieldStatus,
	FieldFraudRiskScore,
	FieldRiskLevel,
	FieldRecommendation,
	FieldKeyFindings,
	FieldVerificationStatus,
	FieldOverallConfidence,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	PolicyNumberValidator func(string) error
	// ClaimTypeValidator is a validator for the "claim_type" field. It is called by the builders before save.
	ClaimTypeValidator func(string) error
	// IncidentLocationValidator is a validator for the "incident_location" field. It is called by the builders before save.
	IncidentLocationValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultFraudRiskScore holds the default value on creation for the "fraud_risk_score" field.
	DefaultFraudRiskScore int
	// FraudRiskScoreValidator is a validator for the "fraud_risk_score" field. It is called by the builders before save.
	FraudRiskScoreValidator func(int) error
	// DefaultVerificationStatus holds the default value on creation for the "verification_status" field.
	DefaultVerificationStatus string
	// VerificationStatusValidator is a validator for the "verification_status" field. It is called by the builders before save.
	VerificationStatusValidator func(string) error
	// DefaultOverallConfidence holds the default value on creation for the "overall_confidence" field.
	DefaultOverallConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Claim queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByPolicyNumber orders the results by the policy_number field.
func ByPolicyNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyNumber, opts...).ToFunc()
}

// ByClaimType orders the results by the claim_type field.
func ByClaimType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimType, opts...).ToFunc()
}

// ByIncidentDate orders the results by the incident_date field.
func ByIncidentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentDate, opts...).ToFunc()
}

// ByIncidentLocation orders the results by the incident_location field.
func ByIncidentLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentLocation, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByClaimAmount orders the results by the claim_amount field.
func ByClaimAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFraudRiskScore orders the results by the fraud_risk_score field.
func ByFraudRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFraudRiskScore, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByVerificationStatus orders the results by the verification_status field.
func ByVerificationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationStatus, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVerificationsCount orders the results by verifications count.
func ByVerificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVerificationsStep(), opts...)
	}
}

// ByVerifications orders the results by verifications terms.
func ByVerifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newVerificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
	)
}
