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
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/google/uuid"
)

// VerificationResultCreate is the builder for creating a VerificationResult entity.
type VerificationResultCreate struct {
	config
	mutation *VerificationResultMutation
	hooks    []Hook
}

// SetClaimID sets the "claim_id" field.
func (_c *VerificationResultCreate) SetClaimID(v uuid.UUID) *VerificationResultCreate {
	_c.mutation.SetClaimID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *VerificationResultCreate) SetCategory(v string) *VerificationResultCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *VerificationResultCreate) SetIsValid(v bool) *VerificationResultCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableIsValid(v *bool) *VerificationResultCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VerificationResultCreate) SetConfidence(v float64) *VerificationResultCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableConfidence(v *float64) *VerificationResultCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetMatchScore sets the "match_score" field.
func (_c *VerificationResultCreate) SetMatchScore(v float64) *VerificationResultCreate {
	_c.mutation.SetMatchScore(v)
	return _c
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableMatchScore(v *float64) *VerificationResultCreate {
	if v != nil {
		_c.SetMatchScore(*v)
	}
	return _c
}

// SetFindings sets the "findings" field.
func (_c *VerificationResultCreate) SetFindings(v []string) *VerificationResultCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationResultCreate) SetCreatedAt(v time.Time) *VerificationResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableCreatedAt(v *time.Time) *VerificationResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationResultCreate) SetID(v uuid.UUID) *VerificationResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationResultCreate) SetNillableID(v *uuid.UUID) *VerificationResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_c *VerificationResultCreate) SetClaim(v *Claim) *VerificationResultCreate {
	return _c.SetClaimID(v.ID)
}

// Mutation returns the VerificationResultMutation object of the builder.
func (_c *VerificationResultCreate) Mutation() *VerificationResultMutation {
	return _c.mutation
}

// Save creates the VerificationResult in the database.
func (_c *VerificationResultCreate) Save(ctx context.Context) (*VerificationResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationResultCreate) SaveX(ctx context.Context) *VerificationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationResultCreate) defaults() {
	if _, ok := _c.mutation.IsValid(); !ok {
		v := verificationresult.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := verificationresult.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		v := verificationresult.DefaultMatchScore
		_c.mutation.SetMatchScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationResultCreate) check() error {
	if _, ok := _c.mutation.ClaimID(); !ok {
		return &ValidationError{Name: "claim_id", err: errors.New(`ent: missing required field "VerificationResult.claim_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "VerificationResult.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := verificationresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "VerificationResult.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "VerificationResult.is_valid"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "VerificationResult.confidence"`)}
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		return &ValidationError{Name: "match_score", err: errors.New(`ent: missing required field "VerificationResult.match_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationResult.created_at"`)}
	}
	if len(_c.mutation.ClaimIDs()) == 0 {
		return &ValidationError{Name: "claim", err: errors.New(`ent: missing required edge "VerificationResult.claim"`)}
	}
	return nil
}

func (_c *VerificationResultCreate) sqlSave(ctx context.Context) (*VerificationResult, error) {
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

func (_c *VerificationResultCreate) createSpec() (*VerificationResult, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationresult.Table, sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(verificationresult.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(verificationresult.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(verificationresult.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.MatchScore(); ok {
		_spec.SetField(verificationresult.FieldMatchScore, field.TypeFloat64, value)
		_node.MatchScore = value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(verificationresult.FieldFindings, field.TypeJSON, value)
		_node.Findings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationresult.ClaimTable,
			Columns: []string{verificationresult.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClaimID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationResultCreateBulk is the builder for creating many VerificationResult entities in bulk.
type VerificationResultCreateBulk struct {
	config
	err      error
	builders []*VerificationResultCreate
}

// Save creates the VerificationResult entities in the database.
func (_c *VerificationResultCreateBulk) Save(ctx context.Context) ([]*VerificationResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationResultMutation)
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
func (_c *VerificationResultCreateBulk) SaveX(ctx context.Context) []*VerificationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
