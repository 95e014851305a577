package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/claimdesk/claims-intake/gen/ent"
	claimspb "github.com/claimdesk/claims-intake/gen/proto/claims/v1"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/export"
	"github.com/claimdesk/claims-intake/internal/intake"
	"github.com/claimdesk/claims-intake/internal/repository"
	"github.com/claimdesk/claims-intake/internal/utils"
)

type ClaimsServer struct {
	claimspb.UnimplementedClaimsServiceServer
	svc       *intake.Service
	claimRepo repository.ClaimRepository
	docRepo   repository.DocumentRepository
	verifRepo repository.VerificationRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewClaimsServer(
	svc *intake.Service,
	claimRepo repository.ClaimRepository,
	docRepo repository.DocumentRepository,
	verifRepo repository.VerificationRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *ClaimsServer {
	return &ClaimsServer{
		svc:       svc,
		claimRepo: claimRepo,
		docRepo:   docRepo,
		verifRepo: verifRepo,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *ClaimsServer) SubmitClaim(ctx context.Context, req *claimspb.SubmitClaimRequest) (*claimspb.SubmitClaimResponse, error) {
	v := common.NewValidator().
		Field("full_name", req.GetFullName(), common.Required).
		Field("email", req.GetEmail(), common.Required, common.Email).
		Field("policy_number", req.GetPolicyNumber(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	claimType, ok := constants.ParseClaimType(req.GetClaimType())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "claim_type must be one of %v", constants.ClaimTypesAsStrings())
	}

	var incidentDate time.Time
	if d := strings.TrimSpace(req.GetIncidentDate()); d != "" {
		parsed, err := utils.ParseYMD(d)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "incident_date invalid (YYYY-MM-DD): %v", err)
		}
		incidentDate = parsed
	}

	var amount *float64
	if a := strings.TrimSpace(req.GetClaimAmount()); a != "" {
		var parsed float64
		if _, err := fmt.Sscanf(a, "%f", &parsed); err != nil {
			return nil, status.Error(codes.InvalidArgument, "claim_amount must be a number")
		}
		av := common.NewValidator().Field("claim_amount", parsed, common.NonNegativeAmount)
		if err := common.ValidateAndReturnError(av); err != nil {
			return nil, err
		}
		amount = &parsed
	}

	claim, err := s.svc.SubmitClaim(ctx, intake.SubmitClaimRequest{
		FullName:         strings.TrimSpace(req.GetFullName()),
		Email:            strings.TrimSpace(req.GetEmail()),
		Phone:            strings.TrimSpace(req.GetPhone()),
		PolicyNumber:     strings.TrimSpace(req.GetPolicyNumber()),
		ClaimType:        claimType,
		IncidentDate:     incidentDate,
		IncidentLocation: strings.TrimSpace(req.GetIncidentLocation()),
		Description:      strings.TrimSpace(req.GetDescription()),
		Amount:           amount,
	})
	if err != nil {
		var mfe *common.MissingFieldError
		if errors.As(err, &mfe) {
			return nil, status.Errorf(codes.InvalidArgument, "missing required fields: %s", strings.Join(mfe.Fields, ", "))
		}
		s.logger.Error("submit claim failed", "policy_number", req.GetPolicyNumber(), "error", err)
		return nil, status.Errorf(codes.Internal, "submit claim: %v", err)
	}

	return &claimspb.SubmitClaimResponse{Claim: utils.ToPBClaim(claim)}, nil
}

func (s *ClaimsServer) GetClaim(ctx context.Context, req *claimspb.GetClaimRequest) (*claimspb.GetClaimResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	claim, err := s.claimRepo.GetClaim(ctx, claimID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "claim not found")
		}
		s.logger.Error("failed to get claim", "claim_id", claimID, "error", err)
		return nil, status.Errorf(codes.Internal, "get claim: %v", err)
	}

	docs, err := s.docRepo.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}
	verifs, err := s.verifRepo.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list verifications: %v", err)
	}

	out := &claimspb.GetClaimResponse{Claim: utils.ToPBClaim(claim)}
	for _, d := range docs {
		out.Documents = append(out.Documents, utils.ToPBDocument(d))
	}
	for _, v := range verifs {
		out.Verifications = append(out.Verifications, utils.ToPBVerificationResult(v))
	}
	return out, nil
}

func (s *ClaimsServer) ListClaims(ctx context.Context, req *claimspb.ListClaimsRequest) (*claimspb.ListClaimsResponse, error) {
	filter, err := listFilter(req.GetStatus(), req.GetClaimType(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}
	filter.Email = strings.TrimSpace(req.GetEmail())

	claims, err := s.claimRepo.ListClaims(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list claims", "error", err)
		return nil, status.Errorf(codes.Internal, "list claims: %v", err)
	}

	out := make([]*claimspb.Claim, 0, len(claims))
	for _, c := range claims {
		out = append(out, utils.ToPBClaim(c))
	}
	return &claimspb.ListClaimsResponse{Claims: out}, nil
}

func (s *ClaimsServer) UpdateClaimStatus(ctx context.Context, req *claimspb.UpdateClaimStatusRequest) (*claimspb.UpdateClaimStatusResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	wanted := strings.ToUpper(strings.TrimSpace(req.GetStatus()))
	valid := false
	for _, st := range constants.ClaimStatusesAsStrings() {
		if wanted == st {
			valid = true
			break
		}
	}
	if !valid {
		return nil, status.Errorf(codes.InvalidArgument, "status must be one of %v", constants.ClaimStatusesAsStrings())
	}

	claim, err := s.claimRepo.UpdateStatus(ctx, claimID, constants.ClaimStatus(wanted))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "claim not found")
		}
		s.logger.Error("failed to update claim status", "claim_id", claimID, "error", err)
		return nil, status.Errorf(codes.Internal, "update status: %v", err)
	}
	return &claimspb.UpdateClaimStatusResponse{Claim: utils.ToPBClaim(claim)}, nil
}

func (s *ClaimsServer) ExportClaims(ctx context.Context, req *claimspb.ExportClaimsRequest) (*claimspb.ExportClaimsResponse, error) {
	filter, err := listFilter(req.GetStatus(), req.GetClaimType(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportClaimsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export claims: %v", err)
	}

	return &claimspb.ExportClaimsResponse{
		Content:  xlsx,
		Filename: fmt.Sprintf("claims-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}

func parseClaimID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "claim_id must be a UUID")
	}
	return id, nil
}

func listFilter(statusRaw, typeRaw, fromRaw, toRaw string) (repository.ListClaimsFilter, error) {
	var filter repository.ListClaimsFilter

	if st := strings.ToUpper(strings.TrimSpace(statusRaw)); st != "" {
		filter.Status = constants.ClaimStatus(st)
	}
	if ct := strings.TrimSpace(typeRaw); ct != "" {
		claimType, ok := constants.ParseClaimType(ct)
		if !ok {
			return filter, status.Errorf(codes.InvalidArgument, "claim_type must be one of %v", constants.ClaimTypesAsStrings())
		}
		filter.ClaimType = claimType
	}
	if fd := strings.TrimSpace(fromRaw); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return filter, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.FromDate = &from
	}
	if td := strings.TrimSpace(toRaw); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return filter, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.ToDate = &to
	}
	return filter, nil
}
