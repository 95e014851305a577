// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/claimdesk/claims-intake/gen/ent/claim"
	"github.com/claimdesk/claims-intake/gen/ent/document"
	"github.com/claimdesk/claims-intake/gen/ent/predicate"
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/google/uuid"
)

// ClaimUpdate is the builder for updating Claim entities.
type ClaimUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimMutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdate) Where(ps ...predicate.Claim) *ClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ClaimUpdate) SetFullName(v string) *ClaimUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableFullName(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClaimUpdate) SetEmail(v string) *ClaimUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableEmail(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClaimUpdate) SetPhone(v string) *ClaimUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillablePhone(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClaimUpdate) ClearPhone() *ClaimUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *ClaimUpdate) SetPolicyNumber(v string) *ClaimUpdate {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillablePolicyNumber(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetClaimType sets the "claim_type" field.
func (_u *ClaimUpdate) SetClaimType(v string) *ClaimUpdate {
	_u.mutation.SetClaimType(v)
	return _u
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimType(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetClaimType(*v)
	}
	return _u
}

// SetIncidentDate sets the "incident_date" field.
func (_u *ClaimUpdate) SetIncidentDate(v time.Time) *ClaimUpdate {
	_u.mutation.SetIncidentDate(v)
	return _u
}

// SetNillableIncidentDate sets the "incident_date" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableIncidentDate(v *time.Time) *ClaimUpdate {
	if v != nil {
		_u.SetIncidentDate(*v)
	}
	return _u
}

// SetIncidentLocation sets the "incident_location" field.
func (_u *ClaimUpdate) SetIncidentLocation(v string) *ClaimUpdate {
	_u.mutation.SetIncidentLocation(v)
	return _u
}

// SetNillableIncidentLocation sets the "incident_location" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableIncidentLocation(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetIncidentLocation(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClaimUpdate) SetDescription(v string) *ClaimUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableDescription(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetClaimAmount sets the "claim_amount" field.
func (_u *ClaimUpdate) SetClaimAmount(v float64) *ClaimUpdate {
	_u.mutation.ResetClaimAmount()
	_u.mutation.SetClaimAmount(v)
	return _u
}

// SetNillableClaimAmount sets the "claim_amount" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimAmount(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetClaimAmount(*v)
	}
	return _u
}

// AddClaimAmount adds value to the "claim_amount" field.
func (_u *ClaimUpdate) AddClaimAmount(v float64) *ClaimUpdate {
	_u.mutation.AddClaimAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClaimUpdate) SetStatus(v string) *ClaimUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableStatus(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFraudRiskScore sets the "fraud_risk_score" field.
func (_u *ClaimUpdate) SetFraudRiskScore(v int) *ClaimUpdate {
	_u.mutation.ResetFraudRiskScore()
	_u.mutation.SetFraudRiskScore(v)
	return _u
}

// SetNillableFraudRiskScore sets the "fraud_risk_score" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableFraudRiskScore(v *int) *ClaimUpdate {
	if v != nil {
		_u.SetFraudRiskScore(*v)
	}
	return _u
}

// AddFraudRiskScore adds value to the "fraud_risk_score" field.
func (_u *ClaimUpdate) AddFraudRiskScore(v int) *ClaimUpdate {
	_u.mutation.AddFraudRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ClaimUpdate) SetRiskLevel(v string) *ClaimUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableRiskLevel(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *ClaimUpdate) ClearRiskLevel() *ClaimUpdate {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *ClaimUpdate) SetRecommendation(v string) *ClaimUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableRecommendation(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *ClaimUpdate) ClearRecommendation() *ClaimUpdate {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *ClaimUpdate) SetKeyFindings(v []string) *ClaimUpdate {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *ClaimUpdate) AppendKeyFindings(v []string) *ClaimUpdate {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *ClaimUpdate) ClearKeyFindings() *ClaimUpdate {
	_u.mutation.ClearKeyFindings()
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *ClaimUpdate) SetVerificationStatus(v string) *ClaimUpdate {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableVerificationStatus(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ClaimUpdate) SetOverallConfidence(v float64) *ClaimUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableOverallConfidence(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ClaimUpdate) AddOverallConfidence(v float64) *ClaimUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimUpdate) SetCreatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableCreatedAt(v *time.Time) *ClaimUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdate) SetUpdatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ClaimUpdate) AddDocumentIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ClaimUpdate) AddDocuments(v ...*Document) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationResult entity by IDs.
func (_u *ClaimUpdate) AddVerificationIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationResult entity.
func (_u *ClaimUpdate) AddVerifications(v ...*VerificationResult) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdate) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ClaimUpdate) ClearDocuments() *ClaimUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ClaimUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ClaimUpdate) RemoveDocuments(v ...*Document) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearVerifications clears all "verifications" edges to the VerificationResult entity.
func (_u *ClaimUpdate) ClearVerifications() *ClaimUpdate {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationResult entities by IDs.
func (_u *ClaimUpdate) RemoveVerificationIDs(ids ...uuid.UUID) *ClaimUpdate {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationResult entities.
func (_u *ClaimUpdate) RemoveVerifications(v ...*VerificationResult) *ClaimUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := claim.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Claim.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := claim.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Claim.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := claim.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Claim.policy_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimType(); ok {
		if err := claim.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncidentLocation(); ok {
		if err := claim.IncidentLocationValidator(v); err != nil {
			return &ValidationError{Name: "incident_location", err: fmt.Errorf(`ent: validator failed for field "Claim.incident_location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := claim.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Claim.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FraudRiskScore(); ok {
		if err := claim.FraudRiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "fraud_risk_score", err: fmt.Errorf(`ent: validator failed for field "Claim.fraud_risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := claim.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Claim.verification_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(claim.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(claim.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(claim.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(claim.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(claim.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimType(); ok {
		_spec.SetField(claim.FieldClaimType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentDate(); ok {
		_spec.SetField(claim.FieldIncidentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IncidentLocation(); ok {
		_spec.SetField(claim.FieldIncidentLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(claim.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimAmount(); ok {
		_spec.SetField(claim.FieldClaimAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClaimAmount(); ok {
		_spec.AddField(claim.FieldClaimAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FraudRiskScore(); ok {
		_spec.SetField(claim.FieldFraudRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFraudRiskScore(); ok {
		_spec.AddField(claim.FieldFraudRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(claim.FieldRiskLevel, field.TypeString, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(claim.FieldRiskLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(claim.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(claim.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(claim.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claim.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(claim.FieldKeyFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(claim.FieldVerificationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(claim.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(claim.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.DocumentsTable,
			Columns: []string{claim.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.DocumentsTable,
			Columns: []string{claim.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.DocumentsTable,
			Columns: []string{claim.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.VerificationsTable,
			Columns: []string{claim.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.VerificationsTable,
			Columns: []string{claim.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.VerificationsTable,
			Columns: []string{claim.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimUpdateOne is the builder for updating a single Claim entity.
type ClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimMutation
}

// SetFullName sets the "full_name" field.
func (_u *ClaimUpdateOne) SetFullName(v string) *ClaimUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableFullName(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClaimUpdateOne) SetEmail(v string) *ClaimUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableEmail(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClaimUpdateOne) SetPhone(v string) *ClaimUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillablePhone(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClaimUpdateOne) ClearPhone() *ClaimUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetPolicyNumber sets the "policy_number" field.
func (_u *ClaimUpdateOne) SetPolicyNumber(v string) *ClaimUpdateOne {
	_u.mutation.SetPolicyNumber(v)
	return _u
}

// SetNillablePolicyNumber sets the "policy_number" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillablePolicyNumber(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetPolicyNumber(*v)
	}
	return _u
}

// SetClaimType sets the "claim_type" field.
func (_u *ClaimUpdateOne) SetClaimType(v string) *ClaimUpdateOne {
	_u.mutation.SetClaimType(v)
	return _u
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimType(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimType(*v)
	}
	return _u
}

// SetIncidentDate sets the "incident_date" field.
func (_u *ClaimUpdateOne) SetIncidentDate(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetIncidentDate(v)
	return _u
}

// SetNillableIncidentDate sets the "incident_date" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableIncidentDate(v *time.Time) *ClaimUpdateOne {
	if v != nil {
		_u.SetIncidentDate(*v)
	}
	return _u
}

// SetIncidentLocation sets the "incident_location" field.
func (_u *ClaimUpdateOne) SetIncidentLocation(v string) *ClaimUpdateOne {
	_u.mutation.SetIncidentLocation(v)
	return _u
}

// SetNillableIncidentLocation sets the "incident_location" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableIncidentLocation(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetIncidentLocation(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClaimUpdateOne) SetDescription(v string) *ClaimUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableDescription(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetClaimAmount sets the "claim_amount" field.
func (_u *ClaimUpdateOne) SetClaimAmount(v float64) *ClaimUpdateOne {
	_u.mutation.ResetClaimAmount()
	_u.mutation.SetClaimAmount(v)
	return _u
}

// SetNillableClaimAmount sets the "claim_amount" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimAmount(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimAmount(*v)
	}
	return _u
}

// AddClaimAmount adds value to the "claim_amount" field.
func (_u *ClaimUpdateOne) AddClaimAmount(v float64) *ClaimUpdateOne {
	_u.mutation.AddClaimAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClaimUpdateOne) SetStatus(v string) *ClaimUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableStatus(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFraudRiskScore sets the "fraud_risk_score" field.
func (_u *ClaimUpdateOne) SetFraudRiskScore(v int) *ClaimUpdateOne {
	_u.mutation.ResetFraudRiskScore()
	_u.mutation.SetFraudRiskScore(v)
	return _u
}

// SetNillableFraudRiskScore sets the "fraud_risk_score" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableFraudRiskScore(v *int) *ClaimUpdateOne {
	if v != nil {
		_u.SetFraudRiskScore(*v)
	}
	return _u
}

// AddFraudRiskScore adds value to the "fraud_risk_score" field.
func (_u *ClaimUpdateOne) AddFraudRiskScore(v int) *ClaimUpdateOne {
	_u.mutation.AddFraudRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ClaimUpdateOne) SetRiskLevel(v string) *ClaimUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableRiskLevel(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *ClaimUpdateOne) ClearRiskLevel() *ClaimUpdateOne {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *ClaimUpdateOne) SetRecommendation(v string) *ClaimUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableRecommendation(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *ClaimUpdateOne) ClearRecommendation() *ClaimUpdateOne {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *ClaimUpdateOne) SetKeyFindings(v []string) *ClaimUpdateOne {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// AppendKeyFindings appends value to the "key_findings" field.
func (_u *ClaimUpdateOne) AppendKeyFindings(v []string) *ClaimUpdateOne {
	_u.mutation.AppendKeyFindings(v)
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *ClaimUpdateOne) ClearKeyFindings() *ClaimUpdateOne {
	_u.mutation.ClearKeyFindings()
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *ClaimUpdateOne) SetVerificationStatus(v string) *ClaimUpdateOne {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableVerificationStatus(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ClaimUpdateOne) SetOverallConfidence(v float64) *ClaimUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableOverallConfidence(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ClaimUpdateOne) AddOverallConfidence(v float64) *ClaimUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimUpdateOne) SetCreatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableCreatedAt(v *time.Time) *ClaimUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdateOne) SetUpdatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ClaimUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ClaimUpdateOne) AddDocuments(v ...*Document) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationResult entity by IDs.
func (_u *ClaimUpdateOne) AddVerificationIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationResult entity.
func (_u *ClaimUpdateOne) AddVerifications(v ...*VerificationResult) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdateOne) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ClaimUpdateOne) ClearDocuments() *ClaimUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ClaimUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ClaimUpdateOne) RemoveDocuments(v ...*Document) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearVerifications clears all "verifications" edges to the VerificationResult entity.
func (_u *ClaimUpdateOne) ClearVerifications() *ClaimUpdateOne {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationResult entities by IDs.
func (_u *ClaimUpdateOne) RemoveVerificationIDs(ids ...uuid.UUID) *ClaimUpdateOne {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationResult entities.
func (_u *ClaimUpdateOne) RemoveVerifications(v ...*VerificationResult) *ClaimUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdateOne) Where(ps ...predicate.Claim) *ClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimUpdateOne) Select(field string, fields ...string) *ClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Claim entity.
func (_u *ClaimUpdateOne) Save(ctx context.Context) (*Claim, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdateOne) SaveX(ctx context.Context) *Claim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := claim.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Claim.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := claim.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Claim.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PolicyNumber(); ok {
		if err := claim.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Claim.policy_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClaimType(); ok {
		if err := claim.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncidentLocation(); ok {
		if err := claim.IncidentLocationValidator(v); err != nil {
			return &ValidationError{Name: "incident_location", err: fmt.Errorf(`ent: validator failed for field "Claim.incident_location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := claim.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Claim.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FraudRiskScore(); ok {
		if err := claim.FraudRiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "fraud_risk_score", err: fmt.Errorf(`ent: validator failed for field "Claim.fraud_risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := claim.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Claim.verification_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimUpdateOne) sqlSave(ctx context.Context) (_node *Claim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Claim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claim.FieldID)
		for _, f := range fields {
			if !claim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claim.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(claim.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(claim.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(claim.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(claim.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyNumber(); ok {
		_spec.SetField(claim.FieldPolicyNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimType(); ok {
		_spec.SetField(claim.FieldClaimType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncidentDate(); ok {
		_spec.SetField(claim.FieldIncidentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IncidentLocation(); ok {
		_spec.SetField(claim.FieldIncidentLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(claim.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimAmount(); ok {
		_spec.SetField(claim.FieldClaimAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClaimAmount(); ok {
		_spec.AddField(claim.FieldClaimAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FraudRiskScore(); ok {
		_spec.SetField(claim.FieldFraudRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFraudRiskScore(); ok {
		_spec.AddField(claim.FieldFraudRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(claim.FieldRiskLevel, field.TypeString, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(claim.FieldRiskLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(claim.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(claim.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(claim.FieldKeyFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claim.FieldKeyFindings, value)
		})
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(claim.FieldKeyFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(claim.FieldVerificationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(claim.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(claim.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.DocumentsTable,
			Columns: []string{claim.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.DocumentsTable,
			Columns: []string{claim.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.DocumentsTable,
			Columns: []string{claim.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.VerificationsTable,
			Columns: []string{claim.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.VerificationsTable,
			Columns: []string{claim.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.VerificationsTable,
			Columns: []string{claim.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Claim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
