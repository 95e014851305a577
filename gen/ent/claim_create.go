// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/claimdesk/claims-intake/gen/ent/claim"
	"github.com/claimdesk/claims-intake/gen/ent/document"
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/google/uuid"
)

// ClaimCreate is the builder for creating a Claim entity.
type ClaimCreate struct {
	config
	mutation *ClaimMutation
	hooks    []Hook
}

// SetFullName sets the "full_name" field.
func (_c *ClaimCreate) SetFullName(v string) *ClaimCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ClaimCreate) SetEmail(v string) *ClaimCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClaimCreate) SetPhone(v string) *ClaimCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ClaimCreate) SetNillablePhone(v *string) *ClaimCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetPolicyNumber sets the "policy_number" field.
func (_c *ClaimCreate) SetPolicyNumber(v string) *ClaimCreate {
	_c.mutation.SetPolicyNumber(v)
	return _c
}

// SetClaimType sets the "claim_type" field.
func (_c *ClaimCreate) SetClaimType(v string) *ClaimCreate {
	_c.mutation.SetClaimType(v)
	return _c
}

// SetIncidentDate sets the "incident_date" field.
func (_c *ClaimCreate) SetIncidentDate(v time.Time) *ClaimCreate {
	_c.mutation.SetIncidentDate(v)
	return _c
}

// SetIncidentLocation sets the "incident_location" field.
func (_c *ClaimCreate) SetIncidentLocation(v string) *ClaimCreate {
	_c.mutation.SetIncidentLocation(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClaimCreate) SetDescription(v string) *ClaimCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetClaimAmount sets the "claim_amount" field.
func (_c *ClaimCreate) SetClaimAmount(v float64) *ClaimCreate {
	_c.mutation.SetClaimAmount(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClaimCreate) SetStatus(v string) *ClaimCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableStatus(v *string) *ClaimCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFraudRiskScore sets the "fraud_risk_score" field.
func (_c *ClaimCreate) SetFraudRiskScore(v int) *ClaimCreate {
	_c.mutation.SetFraudRiskScore(v)
	return _c
}

// SetNillableFraudRiskScore sets the "fraud_risk_score" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableFraudRiskScore(v *int) *ClaimCreate {
	if v != nil {
		_c.SetFraudRiskScore(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *ClaimCreate) SetRiskLevel(v string) *ClaimCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableRiskLevel(v *string) *ClaimCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *ClaimCreate) SetRecommendation(v string) *ClaimCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableRecommendation(v *string) *ClaimCreate {
	if v != nil {
		_c.SetRecommendation(*v)
	}
	return _c
}

// SetKeyFindings sets the "key_findings" field.
func (_c *ClaimCreate) SetKeyFindings(v []string) *ClaimCreate {
	_c.mutation.SetKeyFindings(v)
	return _c
}

// SetVerificationStatus sets the "verification_status" field.
func (_c *ClaimCreate) SetVerificationStatus(v string) *ClaimCreate {
	_c.mutation.SetVerificationStatus(v)
	return _c
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableVerificationStatus(v *string) *ClaimCreate {
	if v != nil {
		_c.SetVerificationStatus(*v)
	}
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *ClaimCreate) SetOverallConfidence(v float64) *ClaimCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableOverallConfidence(v *float64) *ClaimCreate {
	if v != nil {
		_c.SetOverallConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimCreate) SetCreatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableCreatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimCreate) SetUpdatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableUpdatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimCreate) SetID(v uuid.UUID) *ClaimCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableID(v *uuid.UUID) *ClaimCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *ClaimCreate) AddDocumentIDs(ids ...uuid.UUID) *ClaimCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *ClaimCreate) AddDocuments(v ...*Document) *ClaimCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationResult entity by IDs.
func (_c *ClaimCreate) AddVerificationIDs(ids ...uuid.UUID) *ClaimCreate {
	_c.mutation.AddVerificationIDs(ids...)
	return _c
}

// AddVerifications adds the "verifications" edges to the VerificationResult entity.
func (_c *ClaimCreate) AddVerifications(v ...*VerificationResult) *ClaimCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerificationIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_c *ClaimCreate) Mutation() *ClaimMutation {
	return _c.mutation
}

// Save creates the Claim in the database.
func (_c *ClaimCreate) Save(ctx context.Context) (*Claim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimCreate) SaveX(ctx context.Context) *Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := claim.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FraudRiskScore(); !ok {
		v := claim.DefaultFraudRiskScore
		_c.mutation.SetFraudRiskScore(v)
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		v := claim.DefaultVerificationStatus
		_c.mutation.SetVerificationStatus(v)
	}
	if _, ok := _c.mutation.OverallConfidence(); !ok {
		v := claim.DefaultOverallConfidence
		_c.mutation.SetOverallConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claim.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claim.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := claim.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimCreate) check() error {
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Claim.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := claim.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Claim.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Claim.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := claim.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Claim.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PolicyNumber(); !ok {
		return &ValidationError{Name: "policy_number", err: errors.New(`ent: missing required field "Claim.policy_number"`)}
	}
	if v, ok := _c.mutation.PolicyNumber(); ok {
		if err := claim.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "Claim.policy_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimType(); !ok {
		return &ValidationError{Name: "claim_type", err: errors.New(`ent: missing required field "Claim.claim_type"`)}
	}
	if v, ok := _c.mutation.ClaimType(); ok {
		if err := claim.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncidentDate(); !ok {
		return &ValidationError{Name: "incident_date", err: errors.New(`ent: missing required field "Claim.incident_date"`)}
	}
	if _, ok := _c.mutation.IncidentLocation(); !ok {
		return &ValidationError{Name: "incident_location", err: errors.New(`ent: missing required field "Claim.incident_location"`)}
	}
	if v, ok := _c.mutation.IncidentLocation(); ok {
		if err := claim.IncidentLocationValidator(v); err != nil {
			return &ValidationError{Name: "incident_location", err: fmt.Errorf(`ent: validator failed for field "Claim.incident_location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Claim.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := claim.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Claim.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimAmount(); !ok {
		return &ValidationError{Name: "claim_amount", err: errors.New(`ent: missing required field "Claim.claim_amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Claim.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := claim.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Claim.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FraudRiskScore(); !ok {
		return &ValidationError{Name: "fraud_risk_score", err: errors.New(`ent: missing required field "Claim.fraud_risk_score"`)}
	}
	if v, ok := _c.mutation.FraudRiskScore(); ok {
		if err := claim.FraudRiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "fraud_risk_score", err: fmt.Errorf(`ent: validator failed for field "Claim.fraud_risk_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		return &ValidationError{Name: "verification_status", err: errors.New(`ent: missing required field "Claim.verification_status"`)}
	}
	if v, ok := _c.mutation.VerificationStatus(); ok {
		if err := claim.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Claim.verification_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallConfidence(); !ok {
		return &ValidationError{Name: "overall_confidence", err: errors.New(`ent: missing required field "Claim.overall_confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Claim.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Claim.updated_at"`)}
	}
	return nil
}

func (_c *ClaimCreate) sqlSave(ctx context.Context) (*Claim, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimCreate) createSpec() (*Claim, *sqlgraph.CreateSpec) {
	var (
		_node = &Claim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claim.Table, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(claim.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(claim.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(claim.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.PolicyNumber(); ok {
		_spec.SetField(claim.FieldPolicyNumber, field.TypeString, value)
		_node.PolicyNumber = value
	}
	if value, ok := _c.mutation.ClaimType(); ok {
		_spec.SetField(claim.FieldClaimType, field.TypeString, value)
		_node.ClaimType = value
	}
	if value, ok := _c.mutation.IncidentDate(); ok {
		_spec.SetField(claim.FieldIncidentDate, field.TypeTime, value)
		_node.IncidentDate = value
	}
	if value, ok := _c.mutation.IncidentLocation(); ok {
		_spec.SetField(claim.FieldIncidentLocation, field.TypeString, value)
		_node.IncidentLocation = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(claim.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ClaimAmount(); ok {
		_spec.SetField(claim.FieldClaimAmount, field.TypeFloat64, value)
		_node.ClaimAmount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(claim.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FraudRiskScore(); ok {
		_spec.SetField(claim.FieldFraudRiskScore, field.TypeInt, value)
		_node.FraudRiskScore = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(claim.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(claim.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.KeyFindings(); ok {
		_spec.SetField(claim.FieldKeyFindings, field.TypeJSON, value)
		_node.KeyFindings = value
	}
	if value, ok := _c.mutation.VerificationStatus(); ok {
		_spec.SetField(claim.FieldVerificationStatus, field.TypeString, value)
		_node.VerificationStatus = value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(claim.FieldOverallConfidence, field.TypeFloat64, value)
		_node.OverallConfidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClaimCreateBulk is the builder for creating many Claim entities in bulk.
type ClaimCreateBulk struct {
	config
	err      error
	builders []*ClaimCreate
}

// Save creates the Claim entities in the database.
func (_c *ClaimCreateBulk) Save(ctx context.Context) ([]*Claim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Claim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClaimCreateBulk) SaveX(ctx context.Context) []*Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
