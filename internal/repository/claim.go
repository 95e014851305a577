package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/gen/ent"
	"github.com/claimdesk/claims-intake/gen/ent/claim"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/fraud"
	"github.com/claimdesk/claims-intake/internal/utils"
)

// CreateClaimRequest wraps parameters for persisting a new claim. The fraud
// assessment is computed before the claim is saved, so it travels with the
// create request rather than as a later update.
type CreateClaimRequest struct {
	FullName         string
	Email            string
	Phone            string
	PolicyNumber     string
	ClaimType        constants.ClaimType
	IncidentDate     time.Time
	IncidentLocation string
	Description      string
	Amount           float64
	Assessment       *fraud.Result
}

// ListClaimsFilter narrows ListClaims output. Zero values mean no filtering.
type ListClaimsFilter struct {
	Status    constants.ClaimStatus
	ClaimType constants.ClaimType
	Email     string
	FromDate  *time.Time
	ToDate    *time.Time
}

type ClaimRepository interface {
	CreateClaim(ctx context.Context, request *CreateClaimRequest) (*entity.Claim, error)
	GetClaim(ctx context.Context, id uuid.UUID) (*entity.Claim, error)
	ListClaims(ctx context.Context, filter ListClaimsFilter) ([]*entity.Claim, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ClaimStatus) (*entity.Claim, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, summary *entity.VerificationSummary) error
}

type claimRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewClaimRepository(client *ent.Client, logger *slog.Logger) ClaimRepository {
	return &claimRepository{
		client: client,
		logger: logger,
	}
}

func (r *claimRepository) CreateClaim(ctx context.Context, request *CreateClaimRequest) (*entity.Claim, error) {
	a := request.Assessment

	c, err := r.client.Claim.Create().
		SetFullName(request.FullName).
		SetEmail(request.Email).
		SetPhone(request.Phone).
		SetPolicyNumber(request.PolicyNumber).
		SetClaimType(string(request.ClaimType)).
		SetIncidentDate(request.IncidentDate).
		SetIncidentLocation(request.IncidentLocation).
		SetDescription(request.Description).
		SetClaimAmount(request.Amount).
		SetStatus(string(constants.ClaimStatusSubmitted)).
		SetFraudRiskScore(a.FraudRiskScore).
		SetRiskLevel(string(a.RiskLevel)).
		SetRecommendation(string(a.Recommendation)).
		SetKeyFindings(a.KeyFindings).
		SetVerificationStatus(string(constants.VerificationPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create claim", "policy_number", request.PolicyNumber, "error", err)
		return nil, err
	}
	return utils.ToClaim(c), nil
}

func (r *claimRepository) GetClaim(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	c, err := r.client.Claim.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToClaim(c), nil
}

func (r *claimRepository) ListClaims(ctx context.Context, filter ListClaimsFilter) ([]*entity.Claim, error) {
	q := r.client.Claim.Query()
	if filter.Status != "" {
		q = q.Where(claim.Status(string(filter.Status)))
	}
	if filter.ClaimType != "" {
		q = q.Where(claim.ClaimType(string(filter.ClaimType)))
	}
	if filter.Email != "" {
		q = q.Where(claim.Email(filter.Email))
	}
	if filter.FromDate != nil {
		q = q.Where(claim.IncidentDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(claim.IncidentDateLTE(*filter.ToDate))
	}
	claims, err := q.Order(claim.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list claims", "error", err)
		return nil, err
	}

	result := make([]*entity.Claim, len(claims))
	for i, c := range claims {
		result[i] = utils.ToClaim(c)
	}
	return result, nil
}

func (r *claimRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ClaimStatus) (*entity.Claim, error) {
	c, err := r.client.Claim.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update claim status", "claim_id", id, "status", status, "error", err)
		return nil, err
	}
	return utils.ToClaim(c), nil
}

func (r *claimRepository) UpdateVerification(ctx context.Context, id uuid.UUID, summary *entity.VerificationSummary) error {
	err := r.client.Claim.UpdateOneID(id).
		SetVerificationStatus(string(summary.Status)).
		SetOverallConfidence(summary.OverallConfidence).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update claim verification", "claim_id", id, "error", err)
	}
	return err
}
