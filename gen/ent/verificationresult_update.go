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
	"github.com/claimdesk/claims-intake/gen/ent/predicate"
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/google/uuid"
)

// VerificationResultUpdate is the builder for updating VerificationResult entities.
type VerificationResultUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationResultMutation
}

// Where appends a list predicates to the VerificationResultUpdate builder.
func (_u *VerificationResultUpdate) Where(ps ...predicate.VerificationResult) *VerificationResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *VerificationResultUpdate) SetClaimID(v uuid.UUID) *VerificationResultUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *VerificationResultUpdate) SetNillableClaimID(v *uuid.UUID) *VerificationResultUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *VerificationResultUpdate) SetCategory(v string) *VerificationResultUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *VerificationResultUpdate) SetNillableCategory(v *string) *VerificationResultUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *VerificationResultUpdate) SetIsValid(v bool) *VerificationResultUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *VerificationResultUpdate) SetNillableIsValid(v *bool) *VerificationResultUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerificationResultUpdate) SetConfidence(v float64) *VerificationResultUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerificationResultUpdate) SetNillableConfidence(v *float64) *VerificationResultUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VerificationResultUpdate) AddConfidence(v float64) *VerificationResultUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *VerificationResultUpdate) SetMatchScore(v float64) *VerificationResultUpdate {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *VerificationResultUpdate) SetNillableMatchScore(v *float64) *VerificationResultUpdate {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *VerificationResultUpdate) AddMatchScore(v float64) *VerificationResultUpdate {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetFindings sets the "findings" field.
func (_u *VerificationResultUpdate) SetFindings(v []string) *VerificationResultUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *VerificationResultUpdate) AppendFindings(v []string) *VerificationResultUpdate {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *VerificationResultUpdate) ClearFindings() *VerificationResultUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationResultUpdate) SetCreatedAt(v time.Time) *VerificationResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationResultUpdate) SetNillableCreatedAt(v *time.Time) *VerificationResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *VerificationResultUpdate) SetClaim(v *Claim) *VerificationResultUpdate {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the VerificationResultMutation object of the builder.
func (_u *VerificationResultUpdate) Mutation() *VerificationResultMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *VerificationResultUpdate) ClearClaim() *VerificationResultUpdate {
	_u.mutation.ClearClaim()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationResultUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := verificationresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "VerificationResult.category": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationResult.claim"`)
	}
	return nil
}

func (_u *VerificationResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationresult.Table, verificationresult.Columns, sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(verificationresult.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(verificationresult.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verificationresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(verificationresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(verificationresult.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(verificationresult.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(verificationresult.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationresult.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(verificationresult.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationResultUpdateOne is the builder for updating a single VerificationResult entity.
type VerificationResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationResultMutation
}

// SetClaimID sets the "claim_id" field.
func (_u *VerificationResultUpdateOne) SetClaimID(v uuid.UUID) *VerificationResultUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *VerificationResultUpdateOne) SetNillableClaimID(v *uuid.UUID) *VerificationResultUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *VerificationResultUpdateOne) SetCategory(v string) *VerificationResultUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *VerificationResultUpdateOne) SetNillableCategory(v *string) *VerificationResultUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *VerificationResultUpdateOne) SetIsValid(v bool) *VerificationResultUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *VerificationResultUpdateOne) SetNillableIsValid(v *bool) *VerificationResultUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerificationResultUpdateOne) SetConfidence(v float64) *VerificationResultUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerificationResultUpdateOne) SetNillableConfidence(v *float64) *VerificationResultUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VerificationResultUpdateOne) AddConfidence(v float64) *VerificationResultUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *VerificationResultUpdateOne) SetMatchScore(v float64) *VerificationResultUpdateOne {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *VerificationResultUpdateOne) SetNillableMatchScore(v *float64) *VerificationResultUpdateOne {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *VerificationResultUpdateOne) AddMatchScore(v float64) *VerificationResultUpdateOne {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetFindings sets the "findings" field.
func (_u *VerificationResultUpdateOne) SetFindings(v []string) *VerificationResultUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *VerificationResultUpdateOne) AppendFindings(v []string) *VerificationResultUpdateOne {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *VerificationResultUpdateOne) ClearFindings() *VerificationResultUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VerificationResultUpdateOne) SetCreatedAt(v time.Time) *VerificationResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VerificationResultUpdateOne) SetNillableCreatedAt(v *time.Time) *VerificationResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *VerificationResultUpdateOne) SetClaim(v *Claim) *VerificationResultUpdateOne {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the VerificationResultMutation object of the builder.
func (_u *VerificationResultUpdateOne) Mutation() *VerificationResultMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *VerificationResultUpdateOne) ClearClaim() *VerificationResultUpdateOne {
	_u.mutation.ClearClaim()
	return _u
}

// Where appends a list predicates to the VerificationResultUpdate builder.
func (_u *VerificationResultUpdateOne) Where(ps ...predicate.VerificationResult) *VerificationResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationResultUpdateOne) Select(field string, fields ...string) *VerificationResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationResult entity.
func (_u *VerificationResultUpdateOne) Save(ctx context.Context) (*VerificationResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationResultUpdateOne) SaveX(ctx context.Context) *VerificationResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationResultUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := verificationresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "VerificationResult.category": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationResult.claim"`)
	}
	return nil
}

func (_u *VerificationResultUpdateOne) sqlSave(ctx context.Context) (_node *VerificationResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationresult.Table, verificationresult.Columns, sqlgraph.NewFieldSpec(verificationresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationresult.FieldID)
		for _, f := range fields {
			if !verificationresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationresult.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(verificationresult.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(verificationresult.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verificationresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(verificationresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(verificationresult.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(verificationresult.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(verificationresult.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationresult.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(verificationresult.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(verificationresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
