// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/claimdesk/claims-intake/gen/ent/claim"
	"github.com/google/uuid"
)

// Claim is the model entity for the Claim schema.
type Claim struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// PolicyNumber holds the value of the "policy_number" field.
	PolicyNumber string `json:"policy_number,omitempty"`
	// ClaimType holds the value of the "claim_type" field.
	ClaimType string `json:"claim_type,omitempty"`
	// IncidentDate holds the value of the "incident_date" field.
	IncidentDate time.Time `json:"incident_date,omitempty"`
	// IncidentLocation holds the value of the "incident_location" field.
	IncidentLocation string `json:"incident_location,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ClaimAmount holds the value of the "claim_amount" field.
	ClaimAmount float64 `json:"claim_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// FraudRiskScore holds the value of the "fraud_risk_score" field.
	FraudRiskScore int `json:"fraud_risk_score,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel string `json:"risk_level,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation string `json:"recommendation,omitempty"`
	// KeyFindings holds the value of the "key_findings" field.
	KeyFindings []string `json:"key_findings,omitempty"`
	// VerificationStatus holds the value of the "verification_status" field.
	VerificationStatus string `json:"verification_status,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence float64 `json:"overall_confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClaimQuery when eager-loading is set.
	Edges        ClaimEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClaimEdges holds the relations/edges for other nodes in the graph.
type ClaimEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Verifications holds the value of the verifications edge.
	Verifications []*VerificationResult `json:"verifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// VerificationsOrErr returns the Verifications value or an error if the edge
// was not loaded in eager-loading.
func (e ClaimEdges) VerificationsOrErr() ([]*VerificationResult, error) {
	if e.loadedTypes[1] {
		return e.Verifications, nil
	}
	return nil, &NotLoadedError{edge: "verifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Claim) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case claim.FieldKeyFindings:
			values[i] = new([]byte)
		case claim.FieldClaimAmount, claim.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case claim.FieldFraudRiskScore:
			values[i] = new(sql.NullInt64)
		case claim.FieldFullName, claim.FieldEmail, claim.FieldPhone, claim.FieldPolicyNumber, claim.FieldClaimType, claim.FieldIncidentLocation, claim.FieldDescription, claim.FieldStatus, claim.FieldRiskLevel, claim.FieldRecommendation, claim.FieldVerificationStatus:
			values[i] = new(sql.NullString)
		case claim.FieldIncidentDate, claim.FieldCreatedAt, claim.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case claim.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Claim fields.
func (_m *Claim) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case claim.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case claim.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case claim.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case claim.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case claim.FieldPolicyNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_number", values[i])
			} else if value.Valid {
				_m.PolicyNumber = value.String
			}
		case claim.FieldClaimType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_type", values[i])
			} else if value.Valid {
				_m.ClaimType = value.String
			}
		case claim.FieldIncidentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field incident_date", values[i])
			} else if value.Valid {
				_m.IncidentDate = value.Time
			}
		case claim.FieldIncidentLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_location", values[i])
			} else if value.Valid {
				_m.IncidentLocation = value.String
			}
		case claim.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case claim.FieldClaimAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field claim_amount", values[i])
			} else if value.Valid {
				_m.ClaimAmount = value.Float64
			}
		case claim.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case claim.FieldFraudRiskScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fraud_risk_score", values[i])
			} else if value.Valid {
				_m.FraudRiskScore = int(value.Int64)
			}
		case claim.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case claim.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = value.String
			}
		case claim.FieldKeyFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyFindings); err != nil {
					return fmt.Errorf("unmarshal field key_findings: %w", err)
				}
			}
		case claim.FieldVerificationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_status", values[i])
			} else if value.Valid {
				_m.VerificationStatus = value.String
			}
		case claim.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = value.Float64
			}
		case claim.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case claim.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Claim.
// This includes values selected through modifiers, order, etc.
func (_m *Claim) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Claim entity.
func (_m *Claim) QueryDocuments() *DocumentQuery {
	return NewClaimClient(_m.config).QueryDocuments(_m)
}

// QueryVerifications queries the "verifications" edge of the Claim entity.
func (_m *Claim) QueryVerifications() *VerificationResultQuery {
	return NewClaimClient(_m.config).QueryVerifications(_m)
}

// Update returns a builder for updating this Claim.
// Note that you need to call Claim.Unwrap() before calling this method if this Claim
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Claim) Update() *ClaimUpdateOne {
	return NewClaimClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Claim entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Claim) Unwrap() *Claim {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Claim is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Claim) String() string {
	var builder strings.Builder
	builder.WriteString("Claim(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("policy_number=")
	builder.WriteString(_m.PolicyNumber)
	builder.WriteString(", ")
	builder.WriteString("claim_type=")
	builder.WriteString(_m.ClaimType)
	builder.WriteString(", ")
	builder.WriteString("incident_date=")
	builder.WriteString(_m.IncidentDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("incident_location=")
	builder.WriteString(_m.IncidentLocation)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("claim_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClaimAmount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("fraud_risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FraudRiskScore))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("recommendation=")
	builder.WriteString(_m.Recommendation)
	builder.WriteString(", ")
	builder.WriteString("key_findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyFindings))
	builder.WriteString(", ")
	builder.WriteString("verification_status=")
	builder.WriteString(_m.VerificationStatus)
	builder.WriteString(", ")
	builder.WriteString("overall_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallConfidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Claims is a parsable slice of Claim.
type Claims []*Claim
