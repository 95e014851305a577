package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/claimdesk/claims-intake/gen/ent"
	claimspb "github.com/claimdesk/claims-intake/gen/proto/claims/v1"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/async"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/intake"
	"github.com/claimdesk/claims-intake/internal/utils"
)

type DocumentsServer struct {
	claimspb.UnimplementedDocumentsServiceServer
	svc    *intake.Service
	queue  async.Queue
	logger *slog.Logger
}

func NewDocumentsServer(svc *intake.Service, queue async.Queue, logger *slog.Logger) *DocumentsServer {
	return &DocumentsServer{
		svc:    svc,
		queue:  queue,
		logger: logger,
	}
}

func (s *DocumentsServer) UploadDocument(ctx context.Context, req *claimspb.UploadDocumentRequest) (*claimspb.UploadDocumentResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	category, ok := constants.ParseCategory(req.GetCategory())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "category must be one of %v", constants.CategoriesAsStrings())
	}
	if strings.TrimSpace(req.GetFilename()) == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	if len(req.GetContent()) > constants.MaxUploadBytes {
		return nil, status.Errorf(codes.InvalidArgument, "content exceeds %d bytes", constants.MaxUploadBytes)
	}

	doc, err := s.svc.UploadDocument(ctx, intake.UploadDocumentRequest{
		ClaimID:     claimID,
		Category:    category,
		Filename:    strings.TrimSpace(req.GetFilename()),
		ContentType: strings.TrimSpace(req.GetContentType()),
		Data:        req.GetContent(),
	})
	if err != nil {
		var ue *common.UpstreamError
		if errors.As(err, &ue) {
			s.logger.Error("upload document failed", "claim_id", claimID, "stage", ue.Stage, "error", err)
			return nil, status.Errorf(codes.Unavailable, "upload document: %v", err)
		}
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "claim not found")
		}
		return nil, status.Errorf(codes.Internal, "upload document: %v", err)
	}

	// Re-verify in the background so the aggregate reflects the new document.
	if err := s.queue.Enqueue(ctx, async.Job{ClaimID: claimID, SubmittedAt: time.Now()}); err != nil {
		s.logger.Warn("enqueue after upload failed", "claim_id", claimID, "err", err)
	}

	return &claimspb.UploadDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsServer) VerifyClaim(ctx context.Context, req *claimspb.VerifyClaimRequest) (*claimspb.VerifyClaimResponse, error) {
	claimID, err := parseClaimID(req.GetClaimId())
	if err != nil {
		return nil, err
	}

	if req.GetAsync() {
		if err := s.queue.Enqueue(ctx, async.Job{ClaimID: claimID, SubmittedAt: time.Now()}); err != nil {
			s.logger.Error("enqueue failed for claim", "claim_id", claimID, "err", err)
			return nil, status.Errorf(codes.Internal, "enqueue failed: %v", err)
		}
		return &claimspb.VerifyClaimResponse{Queued: true}, nil
	}

	summary, err := s.svc.VerifyClaim(ctx, claimID)
	if err != nil {
		var cv *common.ContractViolation
		if errors.As(err, &cv) {
			s.logger.Error("verification contract violation", "claim_id", claimID, "category", cv.Category, "reason", cv.Reason)
			return nil, status.Errorf(codes.FailedPrecondition, "verify claim: %v", err)
		}
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "claim not found")
		}
		s.logger.Error("verification failed", "claim_id", claimID, "error", err)
		return nil, status.Errorf(codes.Unavailable, "verify claim: %v", err)
	}

	out := &claimspb.VerifyClaimResponse{
		VerificationStatus: string(summary.Status),
		OverallConfidence:  summary.OverallConfidence,
	}
	for _, cat := range constants.Categories() {
		if res, ok := summary.Results[cat]; ok {
			r := res
			out.Results = append(out.Results, utils.ToPBVerificationResult(&r))
		}
	}
	return out, nil
}

func (s *DocumentsServer) GetDocumentURL(ctx context.Context, req *claimspb.GetDocumentURLRequest) (*claimspb.GetDocumentURLResponse, error) {
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	url, expires, err := s.svc.DocumentURL(ctx, docID)
	if err != nil {
		var ue *common.UpstreamError
		if errors.As(err, &ue) {
			return nil, status.Errorf(codes.Unavailable, "document url: %v", err)
		}
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("failed to get document url", "document_id", docID, "error", err)
		return nil, status.Errorf(codes.Internal, "document url: %v", err)
	}

	return &claimspb.GetDocumentURLResponse{
		Url:       url,
		ExpiresAt: expires.UTC().Format(time.RFC3339),
	}, nil
}
