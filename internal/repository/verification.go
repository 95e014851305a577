package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/gen/ent"
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/utils"
)

type VerificationRepository interface {
	// ReplaceForClaim deletes any prior results for the claim and stores the
	// new ones in a single transaction, so re-verification never leaves a mix
	// of old and new rows behind.
	ReplaceForClaim(ctx context.Context, claimID uuid.UUID, results []entity.VerificationResult) error
	ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.VerificationResult, error)
}

type verificationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVerificationRepository(client *ent.Client, logger *slog.Logger) VerificationRepository {
	return &verificationRepository{
		client: client,
		logger: logger,
	}
}

func (r *verificationRepository) ReplaceForClaim(ctx context.Context, claimID uuid.UUID, results []entity.VerificationResult) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.VerificationResult.Delete().
		Where(verificationresult.ClaimID(claimID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to clear verification results", "claim_id", claimID, "error", err)
		return rollback(tx, err)
	}

	builders := make([]*ent.VerificationResultCreate, len(results))
	for i, res := range results {
		builders[i] = tx.VerificationResult.Create().
			SetClaimID(claimID).
			SetCategory(string(res.Category)).
			SetIsValid(res.IsValid).
			SetConfidence(res.Confidence).
			SetMatchScore(res.MatchScore).
			SetFindings(res.Findings)
	}
	if _, err := tx.VerificationResult.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to store verification results", "claim_id", claimID, "error", err)
		return rollback(tx, err)
	}

	return tx.Commit()
}

func (r *verificationRepository) ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.VerificationResult, error) {
	rows, err := r.client.VerificationResult.Query().
		Where(verificationresult.ClaimID(claimID)).
		Order(verificationresult.ByCategory()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list verification results", "claim_id", claimID, "error", err)
		return nil, err
	}

	result := make([]*entity.VerificationResult, len(rows))
	for i, row := range rows {
		result[i] = utils.ToVerificationResult(row)
	}
	return result, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}
