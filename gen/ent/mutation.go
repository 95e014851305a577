// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/claimdesk/claims-intake/gen/ent/claim"
	"github.com/claimdesk/claims-intake/gen/ent/document"
	"github.com/claimdesk/claims-intake/gen/ent/predicate"
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClaim              = "Claim"
	TypeDocument           = "Document"
	TypeVerificationResult = "VerificationResult"
)

// ClaimMutation represents an operation that mutates the Claim nodes in the graph.
type ClaimMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	full_name             *string
	email                 *string
	phone                 *string
	policy_number         *string
	claim_type            *string
	incident_date         *time.Time
	incident_location     *string
	description           *string
	claim_amount          *float64
	addclaim_amount       *float64
	status                *string
	fraud_risk_score      *int
	addfraud_risk_score   *int
	risk_level            *string
	recommendation        *string
	key_findings          *[]string
	appendkey_findings    []string
	verification_status   *string
	overall_confidence    *float64
	addoverall_confidence *float64
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	documents             map[uuid.UUID]struct{}
	removeddocuments      map[uuid.UUID]struct{}
	cleareddocuments      bool
	verifications         map[uuid.UUID]struct{}
	removedverifications  map[uuid.UUID]struct{}
	clearedverifications  bool
	done                  bool
	oldValue              func(context.Context) (*Claim, error)
	predicates            []predicate.Claim
}

var _ ent.Mutation = (*ClaimMutation)(nil)

// claimOption allows management of the mutation configuration using functional options.
type claimOption func(*ClaimMutation)

// newClaimMutation creates new mutation for the Claim entity.
func newClaimMutation(c config, op Op, opts ...claimOption) *ClaimMutation {
	m := &ClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClaimID sets the ID field of the mutation.
func withClaimID(id uuid.UUID) claimOption {
	return func(m *ClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *Claim
		)
		m.oldValue = func(ctx context.Context) (*Claim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Claim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClaim sets the old Claim of the mutation.
func withClaim(node *Claim) claimOption {
	return func(m *ClaimMutation) {
		m.oldValue = func(context.Context) (*Claim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Claim entities.
func (m *ClaimMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClaimMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClaimMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Claim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullName sets the "full_name" field.
func (m *ClaimMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ClaimMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ClaimMutation) ResetFullName() {
	m.full_name = nil
}

// SetEmail sets the "email" field.
func (m *ClaimMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ClaimMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ClaimMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *ClaimMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClaimMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ClaimMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[claim.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ClaimMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[claim.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClaimMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, claim.FieldPhone)
}

// SetPolicyNumber sets the "policy_number" field.
func (m *ClaimMutation) SetPolicyNumber(s string) {
	m.policy_number = &s
}

// PolicyNumber returns the value of the "policy_number" field in the mutation.
func (m *ClaimMutation) PolicyNumber() (r string, exists bool) {
	v := m.policy_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumber returns the old "policy_number" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldPolicyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumber: %w", err)
	}
	return oldValue.PolicyNumber, nil
}

// ResetPolicyNumber resets all changes to the "policy_number" field.
func (m *ClaimMutation) ResetPolicyNumber() {
	m.policy_number = nil
}

// SetClaimType sets the "claim_type" field.
func (m *ClaimMutation) SetClaimType(s string) {
	m.claim_type = &s
}

// ClaimType returns the value of the "claim_type" field in the mutation.
func (m *ClaimMutation) ClaimType() (r string, exists bool) {
	v := m.claim_type
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimType returns the old "claim_type" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimType: %w", err)
	}
	return oldValue.ClaimType, nil
}

// ResetClaimType resets all changes to the "claim_type" field.
func (m *ClaimMutation) ResetClaimType() {
	m.claim_type = nil
}

// SetIncidentDate sets the "incident_date" field.
func (m *ClaimMutation) SetIncidentDate(t time.Time) {
	m.incident_date = &t
}

// IncidentDate returns the value of the "incident_date" field in the mutation.
func (m *ClaimMutation) IncidentDate() (r time.Time, exists bool) {
	v := m.incident_date
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentDate returns the old "incident_date" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldIncidentDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentDate: %w", err)
	}
	return oldValue.IncidentDate, nil
}

// ResetIncidentDate resets all changes to the "incident_date" field.
func (m *ClaimMutation) ResetIncidentDate() {
	m.incident_date = nil
}

// SetIncidentLocation sets the "incident_location" field.
func (m *ClaimMutation) SetIncidentLocation(s string) {
	m.incident_location = &s
}

// IncidentLocation returns the value of the "incident_location" field in the mutation.
func (m *ClaimMutation) IncidentLocation() (r string, exists bool) {
	v := m.incident_location
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentLocation returns the old "incident_location" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldIncidentLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentLocation: %w", err)
	}
	return oldValue.IncidentLocation, nil
}

// ResetIncidentLocation resets all changes to the "incident_location" field.
func (m *ClaimMutation) ResetIncidentLocation() {
	m.incident_location = nil
}

// SetDescription sets the "description" field.
func (m *ClaimMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClaimMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ClaimMutation) ResetDescription() {
	m.description = nil
}

// SetClaimAmount sets the "claim_amount" field.
func (m *ClaimMutation) SetClaimAmount(f float64) {
	m.claim_amount = &f
	m.addclaim_amount = nil
}

// ClaimAmount returns the value of the "claim_amount" field in the mutation.
func (m *ClaimMutation) ClaimAmount() (r float64, exists bool) {
	v := m.claim_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimAmount returns the old "claim_amount" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldClaimAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimAmount: %w", err)
	}
	return oldValue.ClaimAmount, nil
}

// AddClaimAmount adds f to the "claim_amount" field.
func (m *ClaimMutation) AddClaimAmount(f float64) {
	if m.addclaim_amount != nil {
		*m.addclaim_amount += f
	} else {
		m.addclaim_amount = &f
	}
}

// AddedClaimAmount returns the value that was added to the "claim_amount" field in this mutation.
func (m *ClaimMutation) AddedClaimAmount() (r float64, exists bool) {
	v := m.addclaim_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetClaimAmount resets all changes to the "claim_amount" field.
func (m *ClaimMutation) ResetClaimAmount() {
	m.claim_amount = nil
	m.addclaim_amount = nil
}

// SetStatus sets the "status" field.
func (m *ClaimMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ClaimMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ClaimMutation) ResetStatus() {
	m.status = nil
}

// SetFraudRiskScore sets the "fraud_risk_score" field.
func (m *ClaimMutation) SetFraudRiskScore(i int) {
	m.fraud_risk_score = &i
	m.addfraud_risk_score = nil
}

// FraudRiskScore returns the value of the "fraud_risk_score" field in the mutation.
func (m *ClaimMutation) FraudRiskScore() (r int, exists bool) {
	v := m.fraud_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFraudRiskScore returns the old "fraud_risk_score" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldFraudRiskScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFraudRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFraudRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFraudRiskScore: %w", err)
	}
	return oldValue.FraudRiskScore, nil
}

// AddFraudRiskScore adds i to the "fraud_risk_score" field.
func (m *ClaimMutation) AddFraudRiskScore(i int) {
	if m.addfraud_risk_score != nil {
		*m.addfraud_risk_score += i
	} else {
		m.addfraud_risk_score = &i
	}
}

// AddedFraudRiskScore returns the value that was added to the "fraud_risk_score" field in this mutation.
func (m *ClaimMutation) AddedFraudRiskScore() (r int, exists bool) {
	v := m.addfraud_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFraudRiskScore resets all changes to the "fraud_risk_score" field.
func (m *ClaimMutation) ResetFraudRiskScore() {
	m.fraud_risk_score = nil
	m.addfraud_risk_score = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *ClaimMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *ClaimMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (m *ClaimMutation) ClearRiskLevel() {
	m.risk_level = nil
	m.clearedFields[claim.FieldRiskLevel] = struct{}{}
}

// RiskLevelCleared returns if the "risk_level" field was cleared in this mutation.
func (m *ClaimMutation) RiskLevelCleared() bool {
	_, ok := m.clearedFields[claim.FieldRiskLevel]
	return ok
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *ClaimMutation) ResetRiskLevel() {
	m.risk_level = nil
	delete(m.clearedFields, claim.FieldRiskLevel)
}

// SetRecommendation sets the "recommendation" field.
func (m *ClaimMutation) SetRecommendation(s string) {
	m.recommendation = &s
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *ClaimMutation) Recommendation() (r string, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldRecommendation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ClearRecommendation clears the value of the "recommendation" field.
func (m *ClaimMutation) ClearRecommendation() {
	m.recommendation = nil
	m.clearedFields[claim.FieldRecommendation] = struct{}{}
}

// RecommendationCleared returns if the "recommendation" field was cleared in this mutation.
func (m *ClaimMutation) RecommendationCleared() bool {
	_, ok := m.clearedFields[claim.FieldRecommendation]
	return ok
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *ClaimMutation) ResetRecommendation() {
	m.recommendation = nil
	delete(m.clearedFields, claim.FieldRecommendation)
}

// SetKeyFindings sets the "key_findings" field.
func (m *ClaimMutation) SetKeyFindings(s []string) {
	m.key_findings = &s
	m.appendkey_findings = nil
}

// KeyFindings returns the value of the "key_findings" field in the mutation.
func (m *ClaimMutation) KeyFindings() (r []string, exists bool) {
	v := m.key_findings
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyFindings returns the old "key_findings" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldKeyFindings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyFindings: %w", err)
	}
	return oldValue.KeyFindings, nil
}

// AppendKeyFindings adds s to the "key_findings" field.
func (m *ClaimMutation) AppendKeyFindings(s []string) {
	m.appendkey_findings = append(m.appendkey_findings, s...)
}

// AppendedKeyFindings returns the list of values that were appended to the "key_findings" field in this mutation.
func (m *ClaimMutation) AppendedKeyFindings() ([]string, bool) {
	if len(m.appendkey_findings) == 0 {
		return nil, false
	}
	return m.appendkey_findings, true
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (m *ClaimMutation) ClearKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	m.clearedFields[claim.FieldKeyFindings] = struct{}{}
}

// KeyFindingsCleared returns if the "key_findings" field was cleared in this mutation.
func (m *ClaimMutation) KeyFindingsCleared() bool {
	_, ok := m.clearedFields[claim.FieldKeyFindings]
	return ok
}

// ResetKeyFindings resets all changes to the "key_findings" field.
func (m *ClaimMutation) ResetKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	delete(m.clearedFields, claim.FieldKeyFindings)
}

// SetVerificationStatus sets the "verification_status" field.
func (m *ClaimMutation) SetVerificationStatus(s string) {
	m.verification_status = &s
}

// VerificationStatus returns the value of the "verification_status" field in the mutation.
func (m *ClaimMutation) VerificationStatus() (r string, exists bool) {
	v := m.verification_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationStatus returns the old "verification_status" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldVerificationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationStatus: %w", err)
	}
	return oldValue.VerificationStatus, nil
}

// ResetVerificationStatus resets all changes to the "verification_status" field.
func (m *ClaimMutation) ResetVerificationStatus() {
	m.verification_status = nil
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *ClaimMutation) SetOverallConfidence(f float64) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *ClaimMutation) OverallConfidence() (r float64, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldOverallConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *ClaimMutation) AddOverallConfidence(f float64) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *ClaimMutation) AddedOverallConfidence() (r float64, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *ClaimMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClaimMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClaimMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClaimMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClaimMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClaimMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Claim entity.
// If the Claim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClaimMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClaimMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ClaimMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ClaimMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ClaimMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ClaimMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ClaimMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ClaimMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ClaimMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddVerificationIDs adds the "verifications" edge to the VerificationResult entity by ids.
func (m *ClaimMutation) AddVerificationIDs(ids ...uuid.UUID) {
	if m.verifications == nil {
		m.verifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.verifications[ids[i]] = struct{}{}
	}
}

// ClearVerifications clears the "verifications" edge to the VerificationResult entity.
func (m *ClaimMutation) ClearVerifications() {
	m.clearedverifications = true
}

// VerificationsCleared reports if the "verifications" edge to the VerificationResult entity was cleared.
func (m *ClaimMutation) VerificationsCleared() bool {
	return m.clearedverifications
}

// RemoveVerificationIDs removes the "verifications" edge to the VerificationResult entity by IDs.
func (m *ClaimMutation) RemoveVerificationIDs(ids ...uuid.UUID) {
	if m.removedverifications == nil {
		m.removedverifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.verifications, ids[i])
		m.removedverifications[ids[i]] = struct{}{}
	}
}

// RemovedVerifications returns the removed IDs of the "verifications" edge to the VerificationResult entity.
func (m *ClaimMutation) RemovedVerificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedverifications {
		ids = append(ids, id)
	}
	return
}

// VerificationsIDs returns the "verifications" edge IDs in the mutation.
func (m *ClaimMutation) VerificationsIDs() (ids []uuid.UUID) {
	for id := range m.verifications {
		ids = append(ids, id)
	}
	return
}

// ResetVerifications resets all changes to the "verifications" edge.
func (m *ClaimMutation) ResetVerifications() {
	m.verifications = nil
	m.clearedverifications = false
	m.removedverifications = nil
}

// Where appends a list predicates to the ClaimMutation builder.
func (m *ClaimMutation) Where(ps ...predicate.Claim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Claim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Claim).
func (m *ClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClaimMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.full_name != nil {
		fields = append(fields, claim.FieldFullName)
	}
	if m.email != nil {
		fields = append(fields, claim.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, claim.FieldPhone)
	}
	if m.policy_number != nil {
		fields = append(fields, claim.FieldPolicyNumber)
	}
	if m.claim_type != nil {
		fields = append(fields, claim.FieldClaimType)
	}
	if m.incident_date != nil {
		fields = append(fields, claim.FieldIncidentDate)
	}
	if m.incident_location != nil {
		fields = append(fields, claim.FieldIncidentLocation)
	}
	if m.description != nil {
		fields = append(fields, claim.FieldDescription)
	}
	if m.claim_amount != nil {
		fields = append(fields, claim.FieldClaimAmount)
	}
	if m.status != nil {
		fields = append(fields, claim.FieldStatus)
	}
	if m.fraud_risk_score != nil {
		fields = append(fields, claim.FieldFraudRiskScore)
	}
	if m.risk_level != nil {
		fields = append(fields, claim.FieldRiskLevel)
	}
	if m.recommendation != nil {
		fields = append(fields, claim.FieldRecommendation)
	}
	if m.key_findings != nil {
		fields = append(fields, claim.FieldKeyFindings)
	}
	if m.verification_status != nil {
		fields = append(fields, claim.FieldVerificationStatus)
	}
	if m.overall_confidence != nil {
		fields = append(fields, claim.FieldOverallConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, claim.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, claim.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldFullName:
		return m.FullName()
	case claim.FieldEmail:
		return m.Email()
	case claim.FieldPhone:
		return m.Phone()
	case claim.FieldPolicyNumber:
		return m.PolicyNumber()
	case claim.FieldClaimType:
		return m.ClaimType()
	case claim.FieldIncidentDate:
		return m.IncidentDate()
	case claim.FieldIncidentLocation:
		return m.IncidentLocation()
	case claim.FieldDescription:
		return m.Description()
	case claim.FieldClaimAmount:
		return m.ClaimAmount()
	case claim.FieldStatus:
		return m.Status()
	case claim.FieldFraudRiskScore:
		return m.FraudRiskScore()
	case claim.FieldRiskLevel:
		return m.RiskLevel()
	case claim.FieldRecommendation:
		return m.Recommendation()
	case claim.FieldKeyFindings:
		return m.KeyFindings()
	case claim.FieldVerificationStatus:
		return m.VerificationStatus()
	case claim.FieldOverallConfidence:
		return m.OverallConfidence()
	case claim.FieldCreatedAt:
		return m.CreatedAt()
	case claim.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case claim.FieldFullName:
		return m.OldFullName(ctx)
	case claim.FieldEmail:
		return m.OldEmail(ctx)
	case claim.FieldPhone:
		return m.OldPhone(ctx)
	case claim.FieldPolicyNumber:
		return m.OldPolicyNumber(ctx)
	case claim.FieldClaimType:
		return m.OldClaimType(ctx)
	case claim.FieldIncidentDate:
		return m.OldIncidentDate(ctx)
	case claim.FieldIncidentLocation:
		return m.OldIncidentLocation(ctx)
	case claim.FieldDescription:
		return m.OldDescription(ctx)
	case claim.FieldClaimAmount:
		return m.OldClaimAmount(ctx)
	case claim.FieldStatus:
		return m.OldStatus(ctx)
	case claim.FieldFraudRiskScore:
		return m.OldFraudRiskScore(ctx)
	case claim.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case claim.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case claim.FieldKeyFindings:
		return m.OldKeyFindings(ctx)
	case claim.FieldVerificationStatus:
		return m.OldVerificationStatus(ctx)
	case claim.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case claim.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case claim.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Claim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case claim.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case claim.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case claim.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case claim.FieldPolicyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumber(v)
		return nil
	case claim.FieldClaimType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimType(v)
		return nil
	case claim.FieldIncidentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentDate(v)
		return nil
	case claim.FieldIncidentLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentLocation(v)
		return nil
	case claim.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case claim.FieldClaimAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimAmount(v)
		return nil
	case claim.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case claim.FieldFraudRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFraudRiskScore(v)
		return nil
	case claim.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case claim.FieldRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case claim.FieldKeyFindings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyFindings(v)
		return nil
	case claim.FieldVerificationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationStatus(v)
		return nil
	case claim.FieldOverallConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case claim.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case claim.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClaimMutation) AddedFields() []string {
	var fields []string
	if m.addclaim_amount != nil {
		fields = append(fields, claim.FieldClaimAmount)
	}
	if m.addfraud_risk_score != nil {
		fields = append(fields, claim.FieldFraudRiskScore)
	}
	if m.addoverall_confidence != nil {
		fields = append(fields, claim.FieldOverallConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClaimMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case claim.FieldClaimAmount:
		return m.AddedClaimAmount()
	case claim.FieldFraudRiskScore:
		return m.AddedFraudRiskScore()
	case claim.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	case claim.FieldClaimAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClaimAmount(v)
		return nil
	case claim.FieldFraudRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFraudRiskScore(v)
		return nil
	case claim.FieldOverallConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Claim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClaimMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(claim.FieldPhone) {
		fields = append(fields, claim.FieldPhone)
	}
	if m.FieldCleared(claim.FieldRiskLevel) {
		fields = append(fields, claim.FieldRiskLevel)
	}
	if m.FieldCleared(claim.FieldRecommendation) {
		fields = append(fields, claim.FieldRecommendation)
	}
	if m.FieldCleared(claim.FieldKeyFindings) {
		fields = append(fields, claim.FieldKeyFindings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClaimMutation) ClearField(name string) error {
	switch name {
	case claim.FieldPhone:
		m.ClearPhone()
		return nil
	case claim.FieldRiskLevel:
		m.ClearRiskLevel()
		return nil
	case claim.FieldRecommendation:
		m.ClearRecommendation()
		return nil
	case claim.FieldKeyFindings:
		m.ClearKeyFindings()
		return nil
	}
	return fmt.Errorf("unknown Claim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClaimMutation) ResetField(name string) error {
	switch name {
	case claim.FieldFullName:
		m.ResetFullName()
		return nil
	case claim.FieldEmail:
		m.ResetEmail()
		return nil
	case claim.FieldPhone:
		m.ResetPhone()
		return nil
	case claim.FieldPolicyNumber:
		m.ResetPolicyNumber()
		return nil
	case claim.FieldClaimType:
		m.ResetClaimType()
		return nil
	case claim.FieldIncidentDate:
		m.ResetIncidentDate()
		return nil
	case claim.FieldIncidentLocation:
		m.ResetIncidentLocation()
		return nil
	case claim.FieldDescription:
		m.ResetDescription()
		return nil
	case claim.FieldClaimAmount:
		m.ResetClaimAmount()
		return nil
	case claim.FieldStatus:
		m.ResetStatus()
		return nil
	case claim.FieldFraudRiskScore:
		m.ResetFraudRiskScore()
		return nil
	case claim.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case claim.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case claim.FieldKeyFindings:
		m.ResetKeyFindings()
		return nil
	case claim.FieldVerificationStatus:
		m.ResetVerificationStatus()
		return nil
	case claim.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case claim.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case claim.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Claim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, claim.EdgeDocuments)
	}
	if m.verifications != nil {
		edges = append(edges, claim.EdgeVerifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClaimMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.verifications))
		for id := range m.verifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, claim.EdgeDocuments)
	}
	if m.removedverifications != nil {
		edges = append(edges, claim.EdgeVerifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClaimMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case claim.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case claim.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.removedverifications))
		for id := range m.removedverifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, claim.EdgeDocuments)
	}
	if m.clearedverifications {
		edges = append(edges, claim.EdgeVerifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClaimMutation) EdgeCleared(name string) bool {
	switch name {
	case claim.EdgeDocuments:
		return m.cleareddocuments
	case claim.EdgeVerifications:
		return m.clearedverifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClaimMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Claim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClaimMutation) ResetEdge(name string) error {
	switch name {
	case claim.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case claim.EdgeVerifications:
		m.ResetVerifications()
		return nil
	}
	return fmt.Errorf("unknown Claim edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	category       *string
	filename       *string
	content_type   *string
	file_size      *int64
	addfile_size   *int64
	storage_path   *string
	extracted_text *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	claim          *uuid.UUID
	clearedclaim   bool
	done           bool
	oldValue       func(context.Context) (*Document, error)
	predicates     []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimID sets the "claim_id" field.
func (m *DocumentMutation) SetClaimID(u uuid.UUID) {
	m.claim = &u
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *DocumentMutation) ClaimID() (r uuid.UUID, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClaimID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *DocumentMutation) ResetClaimID() {
	m.claim = nil
}

// SetCategory sets the "category" field.
func (m *DocumentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DocumentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *DocumentMutation) ResetCategory() {
	m.category = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *DocumentMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *DocumentMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *DocumentMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[document.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *DocumentMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, document.FieldExtractedText)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *DocumentMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[document.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *DocumentMutation) ClaimCleared() bool {
	return m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ClaimIDs() (ids []uuid.UUID) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *DocumentMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.claim != nil {
		fields = append(fields, document.FieldClaimID)
	}
	if m.category != nil {
		fields = append(fields, document.FieldCategory)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.extracted_text != nil {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldClaimID:
		return m.ClaimID()
	case document.FieldCategory:
		return m.Category()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldContentType:
		return m.ContentType()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldExtractedText:
		return m.ExtractedText()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldClaimID:
		return m.OldClaimID(ctx)
	case document.FieldCategory:
		return m.OldCategory(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldClaimID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case document.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldExtractedText) {
		fields = append(fields, document.FieldExtractedText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldClaimID:
		m.ResetClaimID()
		return nil
	case document.FieldCategory:
		m.ResetCategory()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claim != nil {
		edges = append(edges, document.EdgeClaim)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaim {
		edges = append(edges, document.EdgeClaim)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeClaim:
		return m.clearedclaim
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeClaim:
		m.ClearClaim()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeClaim:
		m.ResetClaim()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// VerificationResultMutation represents an operation that mutates the VerificationResult nodes in the graph.
type VerificationResultMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	category       *string
	is_valid       *bool
	confidence     *float64
	addconfidence  *float64
	match_score    *float64
	addmatch_score *float64
	findings       *[]string
	appendfindings []string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	claim          *uuid.UUID
	clearedclaim   bool
	done           bool
	oldValue       func(context.Context) (*VerificationResult, error)
	predicates     []predicate.VerificationResult
}

var _ ent.Mutation = (*VerificationResultMutation)(nil)

// verificationresultOption allows management of the mutation configuration using functional options.
type verificationresultOption func(*VerificationResultMutation)

// newVerificationResultMutation creates new mutation for the VerificationResult entity.
func newVerificationResultMutation(c config, op Op, opts ...verificationresultOption) *VerificationResultMutation {
	m := &VerificationResultMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationResultID sets the ID field of the mutation.
func withVerificationResultID(id uuid.UUID) verificationresultOption {
	return func(m *VerificationResultMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationResult
		)
		m.oldValue = func(ctx context.Context) (*VerificationResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationResult sets the old VerificationResult of the mutation.
func withVerificationResult(node *VerificationResult) verificationresultOption {
	return func(m *VerificationResultMutation) {
		m.oldValue = func(context.Context) (*VerificationResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationResult entities.
func (m *VerificationResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaimID sets the "claim_id" field.
func (m *VerificationResultMutation) SetClaimID(u uuid.UUID) {
	m.claim = &u
}

// ClaimID returns the value of the "claim_id" field in the mutation.
func (m *VerificationResultMutation) ClaimID() (r uuid.UUID, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimID returns the old "claim_id" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldClaimID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimID: %w", err)
	}
	return oldValue.ClaimID, nil
}

// ResetClaimID resets all changes to the "claim_id" field.
func (m *VerificationResultMutation) ResetClaimID() {
	m.claim = nil
}

// SetCategory sets the "category" field.
func (m *VerificationResultMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *VerificationResultMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *VerificationResultMutation) ResetCategory() {
	m.category = nil
}

// SetIsValid sets the "is_valid" field.
func (m *VerificationResultMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *VerificationResultMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *VerificationResultMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetConfidence sets the "confidence" field.
func (m *VerificationResultMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *VerificationResultMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *VerificationResultMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *VerificationResultMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *VerificationResultMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetMatchScore sets the "match_score" field.
func (m *VerificationResultMutation) SetMatchScore(f float64) {
	m.match_score = &f
	m.addmatch_score = nil
}

// MatchScore returns the value of the "match_score" field in the mutation.
func (m *VerificationResultMutation) MatchScore() (r float64, exists bool) {
	v := m.match_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchScore returns the old "match_score" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldMatchScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchScore: %w", err)
	}
	return oldValue.MatchScore, nil
}

// AddMatchScore adds f to the "match_score" field.
func (m *VerificationResultMutation) AddMatchScore(f float64) {
	if m.addmatch_score != nil {
		*m.addmatch_score += f
	} else {
		m.addmatch_score = &f
	}
}

// AddedMatchScore returns the value that was added to the "match_score" field in this mutation.
func (m *VerificationResultMutation) AddedMatchScore() (r float64, exists bool) {
	v := m.addmatch_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchScore resets all changes to the "match_score" field.
func (m *VerificationResultMutation) ResetMatchScore() {
	m.match_score = nil
	m.addmatch_score = nil
}

// SetFindings sets the "findings" field.
func (m *VerificationResultMutation) SetFindings(s []string) {
	m.findings = &s
	m.appendfindings = nil
}

// Findings returns the value of the "findings" field in the mutation.
func (m *VerificationResultMutation) Findings() (r []string, exists bool) {
	v := m.findings
	if v == nil {
		return
	}
	return *v, true
}

// OldFindings returns the old "findings" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldFindings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindings: %w", err)
	}
	return oldValue.Findings, nil
}

// AppendFindings adds s to the "findings" field.
func (m *VerificationResultMutation) AppendFindings(s []string) {
	m.appendfindings = append(m.appendfindings, s...)
}

// AppendedFindings returns the list of values that were appended to the "findings" field in this mutation.
func (m *VerificationResultMutation) AppendedFindings() ([]string, bool) {
	if len(m.appendfindings) == 0 {
		return nil, false
	}
	return m.appendfindings, true
}

// ClearFindings clears the value of the "findings" field.
func (m *VerificationResultMutation) ClearFindings() {
	m.findings = nil
	m.appendfindings = nil
	m.clearedFields[verificationresult.FieldFindings] = struct{}{}
}

// FindingsCleared returns if the "findings" field was cleared in this mutation.
func (m *VerificationResultMutation) FindingsCleared() bool {
	_, ok := m.clearedFields[verificationresult.FieldFindings]
	return ok
}

// ResetFindings resets all changes to the "findings" field.
func (m *VerificationResultMutation) ResetFindings() {
	m.findings = nil
	m.appendfindings = nil
	delete(m.clearedFields, verificationresult.FieldFindings)
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (m *VerificationResultMutation) ClearClaim() {
	m.clearedclaim = true
	m.clearedFields[verificationresult.FieldClaimID] = struct{}{}
}

// ClaimCleared reports if the "claim" edge to the Claim entity was cleared.
func (m *VerificationResultMutation) ClaimCleared() bool {
	return m.clearedclaim
}

// ClaimIDs returns the "claim" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClaimID instead. It exists only for internal usage by the builders.
func (m *VerificationResultMutation) ClaimIDs() (ids []uuid.UUID) {
	if id := m.claim; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClaim resets all changes to the "claim" edge.
func (m *VerificationResultMutation) ResetClaim() {
	m.claim = nil
	m.clearedclaim = false
}

// Where appends a list predicates to the VerificationResultMutation builder.
func (m *VerificationResultMutation) Where(ps ...predicate.VerificationResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationResult).
func (m *VerificationResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.claim != nil {
		fields = append(fields, verificationresult.FieldClaimID)
	}
	if m.category != nil {
		fields = append(fields, verificationresult.FieldCategory)
	}
	if m.is_valid != nil {
		fields = append(fields, verificationresult.FieldIsValid)
	}
	if m.confidence != nil {
		fields = append(fields, verificationresult.FieldConfidence)
	}
	if m.match_score != nil {
		fields = append(fields, verificationresult.FieldMatchScore)
	}
	if m.findings != nil {
		fields = append(fields, verificationresult.FieldFindings)
	}
	if m.created_at != nil {
		fields = append(fields, verificationresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationresult.FieldClaimID:
		return m.ClaimID()
	case verificationresult.FieldCategory:
		return m.Category()
	case verificationresult.FieldIsValid:
		return m.IsValid()
	case verificationresult.FieldConfidence:
		return m.Confidence()
	case verificationresult.FieldMatchScore:
		return m.MatchScore()
	case verificationresult.FieldFindings:
		return m.Findings()
	case verificationresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationresult.FieldClaimID:
		return m.OldClaimID(ctx)
	case verificationresult.FieldCategory:
		return m.OldCategory(ctx)
	case verificationresult.FieldIsValid:
		return m.OldIsValid(ctx)
	case verificationresult.FieldConfidence:
		return m.OldConfidence(ctx)
	case verificationresult.FieldMatchScore:
		return m.OldMatchScore(ctx)
	case verificationresult.FieldFindings:
		return m.OldFindings(ctx)
	case verificationresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationresult.FieldClaimID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimID(v)
		return nil
	case verificationresult.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case verificationresult.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case verificationresult.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case verificationresult.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchScore(v)
		return nil
	case verificationresult.FieldFindings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindings(v)
		return nil
	case verificationresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationResultMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, verificationresult.FieldConfidence)
	}
	if m.addmatch_score != nil {
		fields = append(fields, verificationresult.FieldMatchScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationresult.FieldConfidence:
		return m.AddedConfidence()
	case verificationresult.FieldMatchScore:
		return m.AddedMatchScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationresult.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case verificationresult.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchScore(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationresult.FieldFindings) {
		fields = append(fields, verificationresult.FieldFindings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationResultMutation) ClearField(name string) error {
	switch name {
	case verificationresult.FieldFindings:
		m.ClearFindings()
		return nil
	}
	return fmt.Errorf("unknown VerificationResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationResultMutation) ResetField(name string) error {
	switch name {
	case verificationresult.FieldClaimID:
		m.ResetClaimID()
		return nil
	case verificationresult.FieldCategory:
		m.ResetCategory()
		return nil
	case verificationresult.FieldIsValid:
		m.ResetIsValid()
		return nil
	case verificationresult.FieldConfidence:
		m.ResetConfidence()
		return nil
	case verificationresult.FieldMatchScore:
		m.ResetMatchScore()
		return nil
	case verificationresult.FieldFindings:
		m.ResetFindings()
		return nil
	case verificationresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.claim != nil {
		edges = append(edges, verificationresult.EdgeClaim)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationresult.EdgeClaim:
		if id := m.claim; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclaim {
		edges = append(edges, verificationresult.EdgeClaim)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationResultMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationresult.EdgeClaim:
		return m.clearedclaim
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationResultMutation) ClearEdge(name string) error {
	switch name {
	case verificationresult.EdgeClaim:
		m.ClearClaim()
		return nil
	}
	return fmt.Errorf("unknown VerificationResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationResultMutation) ResetEdge(name string) error {
	switch name {
	case verificationresult.EdgeClaim:
		m.ResetClaim()
		return nil
	}
	return fmt.Errorf("unknown VerificationResult edge %s", name)
}
