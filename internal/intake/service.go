// Package intake orchestrates claim submission, document upload, and
// verification across the fraud, OCR, storage, and persistence layers.
package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/fraud"
	"github.com/claimdesk/claims-intake/internal/ocr"
	"github.com/claimdesk/claims-intake/internal/repository"
	"github.com/claimdesk/claims-intake/internal/storage"
	"github.com/claimdesk/claims-intake/internal/verify"
)

// TextExtractor pulls machine-readable text out of an uploaded document.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType string) (string, error)
}

// FraudAnalyzer scores a submission before it is persisted.
type FraudAnalyzer interface {
	Analyze(ctx context.Context, fields fraud.Fields) (fraud.Result, error)
}

// DocumentVerifier cross-checks uploaded documents against the claim.
type DocumentVerifier interface {
	Verify(ctx context.Context, claim verify.ClaimContext, documents map[constants.DocumentCategory]verify.DocumentInput) (entity.VerificationSummary, error)
}

var _ TextExtractor = (*ocr.Extractor)(nil)
var _ FraudAnalyzer = (*fraud.Analyzer)(nil)
var _ DocumentVerifier = (*verify.Verifier)(nil)

// Service handles intake business logic.
type Service struct {
	claimRepo repository.ClaimRepository
	docRepo   repository.DocumentRepository
	verifRepo repository.VerificationRepository
	store     storage.ObjectStore
	extractor TextExtractor
	analyzer  FraudAnalyzer
	verifier  DocumentVerifier
	logger    *slog.Logger
}

func NewService(
	claimRepo repository.ClaimRepository,
	docRepo repository.DocumentRepository,
	verifRepo repository.VerificationRepository,
	store storage.ObjectStore,
	extractor TextExtractor,
	analyzer FraudAnalyzer,
	verifier DocumentVerifier,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		claimRepo: claimRepo,
		docRepo:   docRepo,
		verifRepo: verifRepo,
		store:     store,
		extractor: extractor,
		analyzer:  analyzer,
		verifier:  verifier,
		logger:    logger,
	}
}

// SubmitClaimRequest carries a new claim submission.
type SubmitClaimRequest struct {
	FullName         string
	Email            string
	Phone            string
	PolicyNumber     string
	ClaimType        constants.ClaimType
	IncidentDate     time.Time
	IncidentLocation string
	Description      string
	Amount           *float64
}

// SubmitClaim runs fraud analysis and persists the claim with its assessment.
// The fraud result is computed first so that a submission rejected for missing
// fields leaves no partial claim behind.
func (s *Service) SubmitClaim(ctx context.Context, req SubmitClaimRequest) (*entity.Claim, error) {
	incidentDate := ""
	if !req.IncidentDate.IsZero() {
		incidentDate = req.IncidentDate.Format("2006-01-02")
	}
	fields := fraud.Fields{
		ClaimType:        string(req.ClaimType),
		IncidentDate:     incidentDate,
		IncidentLocation: req.IncidentLocation,
		Description:      req.Description,
		ClaimAmount:      amountString(req.Amount),
	}

	s.logger.Info("intake.submit.start", "policy_number", req.PolicyNumber, "claim_type", req.ClaimType)
	assessment, err := s.analyzer.Analyze(ctx, fields)
	if err != nil {
		var mfe *common.MissingFieldError
		if errors.As(err, &mfe) {
			s.logger.Warn("intake.submit.rejected", "policy_number", req.PolicyNumber, "missing", mfe.Fields)
		}
		return nil, err
	}

	var amount float64
	if req.Amount != nil {
		amount = *req.Amount
	}
	claim, err := s.claimRepo.CreateClaim(ctx, &repository.CreateClaimRequest{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		PolicyNumber:     req.PolicyNumber,
		ClaimType:        req.ClaimType,
		IncidentDate:     req.IncidentDate,
		IncidentLocation: req.IncidentLocation,
		Description:      req.Description,
		Amount:           amount,
		Assessment:       &assessment,
	})
	if err != nil {
		return nil, &common.UpstreamError{Stage: common.StagePersist, Cause: err}
	}

	s.logger.Info("intake.submit.ok",
		"claim_id", claim.ID,
		"fraud_risk_score", claim.FraudRiskScore,
		"risk_level", claim.RiskLevel,
		"recommendation", claim.Recommendation)
	return claim, nil
}

// UploadDocumentRequest carries one uploaded file for an existing claim.
type UploadDocumentRequest struct {
	ClaimID     uuid.UUID
	Category    constants.DocumentCategory
	Filename    string
	ContentType string
	Data        []byte
}

// UploadDocument stores the file, extracts its text, and records the document.
func (s *Service) UploadDocument(ctx context.Context, req UploadDocumentRequest) (*entity.Document, error) {
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	if len(req.Data) > constants.MaxUploadBytes {
		return nil, fmt.Errorf("document exceeds %d bytes", constants.MaxUploadBytes)
	}

	claim, err := s.claimRepo.GetClaim(ctx, req.ClaimID)
	if err != nil {
		return nil, err
	}

	key, err := s.store.Put(ctx, claim.ID, req.Filename, req.ContentType, req.Data)
	if err != nil {
		return nil, err
	}

	// OCR failure is not fatal to the upload; the document is kept with empty
	// text and verification later reports the gap.
	text, err := s.extractor.Extract(ctx, req.Data, req.ContentType)
	if err != nil {
		s.logger.Warn("intake.upload.ocr_failed", "claim_id", claim.ID, "filename", req.Filename, "error", err)
		text = ""
	}

	doc, err := s.docRepo.CreateDocument(ctx, &repository.CreateDocumentRequest{
		ClaimID:       claim.ID,
		Category:      req.Category,
		Filename:      req.Filename,
		ContentType:   req.ContentType,
		FileSize:      int64(len(req.Data)),
		StoragePath:   key,
		ExtractedText: text,
	})
	if err != nil {
		return nil, &common.UpstreamError{Stage: common.StagePersist, Cause: err}
	}

	s.logger.Info("intake.upload.ok",
		"claim_id", claim.ID,
		"document_id", doc.ID,
		"category", doc.Category,
		"text_len", len(text))
	return doc, nil
}

// VerifyClaim runs document verification for every category the claim has
// documents for and persists the outcome. When a category fails, results from
// the categories that completed are still stored and the error is returned
// alongside the partial summary.
func (s *Service) VerifyClaim(ctx context.Context, claimID uuid.UUID) (*entity.VerificationSummary, error) {
	claim, err := s.claimRepo.GetClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	docs, err := s.docRepo.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}

	inputs := make(map[constants.DocumentCategory]verify.DocumentInput)
	for _, d := range docs {
		// Later uploads replace earlier ones in the same category.
		inputs[d.Category] = verify.DocumentInput{Text: d.ExtractedText}
	}
	if len(inputs) == 0 {
		s.logger.Info("intake.verify.no_documents", "claim_id", claimID)
		summary := entity.VerificationSummary{
			Status:  constants.VerificationPending,
			Results: map[constants.DocumentCategory]entity.VerificationResult{},
		}
		return &summary, nil
	}

	claimCtx := verify.ClaimContext{
		FullName:         claim.FullName,
		Email:            claim.Email,
		Phone:            claim.Phone,
		PolicyNumber:     claim.PolicyNumber,
		ClaimType:        string(claim.ClaimType),
		IncidentDate:     claim.IncidentDate.Format("2006-01-02"),
		IncidentLocation: claim.IncidentLocation,
		Description:      claim.Description,
		Amount:           fmt.Sprintf("%.2f", claim.Amount),
	}

	summary, verr := s.verifier.Verify(ctx, claimCtx, inputs)

	if len(summary.Results) > 0 {
		results := make([]entity.VerificationResult, 0, len(summary.Results))
		for _, res := range summary.Results {
			results = append(results, res)
		}
		if err := s.verifRepo.ReplaceForClaim(ctx, claimID, results); err != nil {
			return &summary, &common.UpstreamError{Stage: common.StagePersist, Cause: err}
		}
		if err := s.claimRepo.UpdateVerification(ctx, claimID, &summary); err != nil {
			return &summary, &common.UpstreamError{Stage: common.StagePersist, Cause: err}
		}
	}

	if verr != nil {
		s.logger.Error("intake.verify.partial", "claim_id", claimID, "completed", len(summary.Results), "error", verr)
		return &summary, verr
	}

	s.logger.Info("intake.verify.ok",
		"claim_id", claimID,
		"verification_status", summary.Status,
		"overall_confidence", summary.OverallConfidence)
	return &summary, nil
}

// DocumentURL returns a short-lived download link for a stored document.
func (s *Service) DocumentURL(ctx context.Context, documentID uuid.UUID) (string, time.Time, error) {
	doc, err := s.docRepo.GetDocument(ctx, documentID)
	if err != nil {
		return "", time.Time{}, err
	}
	return s.store.SignedURL(ctx, doc.StoragePath, doc.Filename)
}

// amountString formats a supplied amount for the model prompt. A nil amount
// means the caller never provided one; zero is a valid amount and formats as
// "0.00" so it is not mistaken for a missing field.
func amountString(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
