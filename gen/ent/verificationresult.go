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
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/google/uuid"
)

// VerificationResult is the model entity for the VerificationResult schema.
type VerificationResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ClaimID holds the value of the "claim_id" field.
	ClaimID uuid.UUID `json:"claim_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// MatchScore holds the value of the "match_score" field.
	MatchScore float64 `json:"match_score,omitempty"`
	// Findings holds the value of the "findings" field.
	Findings []string `json:"findings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationResultQuery when eager-loading is set.
	Edges        VerificationResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationResultEdges holds the relations/edges for other nodes in the graph.
type VerificationResultEdges struct {
	// Claim holds the value of the claim edge.
	Claim *Claim `json:"claim,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClaimOrErr returns the Claim value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationResultEdges) ClaimOrErr() (*Claim, error) {
	if e.Claim != nil {
		return e.Claim, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: claim.Label}
	}
	return nil, &NotLoadedError{edge: "claim"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationresult.FieldFindings:
			values[i] = new([]byte)
		case verificationresult.FieldIsValid:
			values[i] = new(sql.NullBool)
		case verificationresult.FieldConfidence, verificationresult.FieldMatchScore:
			values[i] = new(sql.NullFloat64)
		case verificationresult.FieldCategory:
			values[i] = new(sql.NullString)
		case verificationresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case verificationresult.FieldID, verificationresult.FieldClaimID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationResult fields.
func (_m *VerificationResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationresult.FieldClaimID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field claim_id", values[i])
			} else if value != nil {
				_m.ClaimID = *value
			}
		case verificationresult.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case verificationresult.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case verificationresult.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case verificationresult.FieldMatchScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_score", values[i])
			} else if value.Valid {
				_m.MatchScore = value.Float64
			}
		case verificationresult.FieldFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Findings); err != nil {
					return fmt.Errorf("unmarshal field findings: %w", err)
				}
			}
		case verificationresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationResult.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClaim queries the "claim" edge of the VerificationResult entity.
func (_m *VerificationResult) QueryClaim() *ClaimQuery {
	return NewVerificationResultClient(_m.config).QueryClaim(_m)
}

// Update returns a builder for updating this VerificationResult.
// Note that you need to call VerificationResult.Unwrap() before calling this method if this VerificationResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationResult) Update() *VerificationResultUpdateOne {
	return NewVerificationResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationResult) Unwrap() *VerificationResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationResult) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("claim_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClaimID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("is_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValid))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("match_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchScore))
	builder.WriteString(", ")
	builder.WriteString("findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Findings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationResults is a parsable slice of VerificationResult.
type VerificationResults []*VerificationResult
