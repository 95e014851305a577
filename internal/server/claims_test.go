package server

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/claimdesk/claims-intake/gen/ent"
	claimspb "github.com/claimdesk/claims-intake/gen/proto/claims/v1"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/repository"
)

// errClaimRepo fails every claim lookup with a fixed error.
type errClaimRepo struct {
	err error
}

func (r *errClaimRepo) CreateClaim(context.Context, *repository.CreateClaimRequest) (*entity.Claim, error) {
	return nil, r.err
}

func (r *errClaimRepo) GetClaim(context.Context, uuid.UUID) (*entity.Claim, error) {
	return nil, r.err
}

func (r *errClaimRepo) ListClaims(context.Context, repository.ListClaimsFilter) ([]*entity.Claim, error) {
	return nil, r.err
}

func (r *errClaimRepo) UpdateStatus(context.Context, uuid.UUID, constants.ClaimStatus) (*entity.Claim, error) {
	return nil, r.err
}

func (r *errClaimRepo) UpdateVerification(context.Context, uuid.UUID, *entity.VerificationSummary) error {
	return r.err
}

func TestGetClaim_ErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"missing claim", &ent.NotFoundError{}, codes.NotFound},
		{"database unreachable", errors.New("connection refused"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewClaimsServer(nil, &errClaimRepo{err: tt.err}, nil, nil, nil, slog.Default())
			_, err := s.GetClaim(context.Background(), &claimspb.GetClaimRequest{ClaimId: uuid.NewString()})
			if status.Code(err) != tt.want {
				t.Fatalf("code = %v, want %v (err: %v)", status.Code(err), tt.want, err)
			}
		})
	}
}

func TestUpdateClaimStatus_ErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"missing claim", &ent.NotFoundError{}, codes.NotFound},
		{"database unreachable", errors.New("connection refused"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewClaimsServer(nil, &errClaimRepo{err: tt.err}, nil, nil, nil, slog.Default())
			_, err := s.UpdateClaimStatus(context.Background(), &claimspb.UpdateClaimStatusRequest{
				ClaimId: uuid.NewString(),
				Status:  string(constants.ClaimStatusApproved),
			})
			if status.Code(err) != tt.want {
				t.Fatalf("code = %v, want %v (err: %v)", status.Code(err), tt.want, err)
			}
		})
	}
}
