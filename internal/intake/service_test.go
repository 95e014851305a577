package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/fraud"
	"github.com/claimdesk/claims-intake/internal/repository"
	"github.com/claimdesk/claims-intake/internal/verify"
)

type stubClaimRepo struct {
	claims  map[uuid.UUID]*entity.Claim
	created int
}

func newStubClaimRepo() *stubClaimRepo {
	return &stubClaimRepo{claims: map[uuid.UUID]*entity.Claim{}}
}

func (r *stubClaimRepo) CreateClaim(_ context.Context, req *repository.CreateClaimRequest) (*entity.Claim, error) {
	r.created++
	c := &entity.Claim{
		ID:                 uuid.New(),
		FullName:           req.FullName,
		Email:              req.Email,
		PolicyNumber:       req.PolicyNumber,
		ClaimType:          req.ClaimType,
		IncidentDate:       req.IncidentDate,
		IncidentLocation:   req.IncidentLocation,
		Description:        req.Description,
		Amount:             req.Amount,
		Status:             constants.ClaimStatusSubmitted,
		FraudRiskScore:     req.Assessment.FraudRiskScore,
		RiskLevel:          req.Assessment.RiskLevel,
		Recommendation:     req.Assessment.Recommendation,
		KeyFindings:        req.Assessment.KeyFindings,
		VerificationStatus: constants.VerificationPending,
	}
	r.claims[c.ID] = c
	return c, nil
}

func (r *stubClaimRepo) GetClaim(_ context.Context, id uuid.UUID) (*entity.Claim, error) {
	c, ok := r.claims[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubClaimRepo) ListClaims(context.Context, repository.ListClaimsFilter) ([]*entity.Claim, error) {
	return nil, nil
}

func (r *stubClaimRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.ClaimStatus) (*entity.Claim, error) {
	c, err := r.GetClaim(context.Background(), id)
	if err != nil {
		return nil, err
	}
	c.Status = status
	return c, nil
}

func (r *stubClaimRepo) UpdateVerification(_ context.Context, id uuid.UUID, summary *entity.VerificationSummary) error {
	c, ok := r.claims[id]
	if !ok {
		return errors.New("not found")
	}
	c.VerificationStatus = summary.Status
	c.OverallConfidence = summary.OverallConfidence
	return nil
}

type stubDocRepo struct {
	docs []*entity.Document
}

func (r *stubDocRepo) CreateDocument(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	d := &entity.Document{
		ID:            uuid.New(),
		ClaimID:       req.ClaimID,
		Category:      req.Category,
		Filename:      req.Filename,
		ContentType:   req.ContentType,
		FileSize:      req.FileSize,
		StoragePath:   req.StoragePath,
		ExtractedText: req.ExtractedText,
	}
	r.docs = append(r.docs, d)
	return d, nil
}

func (r *stubDocRepo) GetDocument(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubDocRepo) ListByClaim(_ context.Context, claimID uuid.UUID) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.docs {
		if d.ClaimID == claimID {
			out = append(out, d)
		}
	}
	return out, nil
}

type stubVerifRepo struct {
	stored map[uuid.UUID][]entity.VerificationResult
}

func newStubVerifRepo() *stubVerifRepo {
	return &stubVerifRepo{stored: map[uuid.UUID][]entity.VerificationResult{}}
}

func (r *stubVerifRepo) ReplaceForClaim(_ context.Context, claimID uuid.UUID, results []entity.VerificationResult) error {
	r.stored[claimID] = results
	return nil
}

func (r *stubVerifRepo) ListByClaim(_ context.Context, claimID uuid.UUID) ([]*entity.VerificationResult, error) {
	var out []*entity.VerificationResult
	for i := range r.stored[claimID] {
		out = append(out, &r.stored[claimID][i])
	}
	return out, nil
}

type stubStore struct {
	puts int
}

func (s *stubStore) Put(_ context.Context, claimID uuid.UUID, filename, _ string, _ []byte) (string, error) {
	s.puts++
	return "claims/" + claimID.String() + "/" + filename, nil
}

func (s *stubStore) SignedURL(_ context.Context, key, _ string) (string, time.Time, error) {
	return "https://store.local/" + key, time.Now().Add(15 * time.Minute), nil
}

func (s *stubStore) EnsureBucket(context.Context) error { return nil }

type stubExtractor struct {
	text string
	err  error
}

func (e *stubExtractor) Extract(context.Context, []byte, string) (string, error) {
	return e.text, e.err
}

type stubAnalyzer struct {
	result fraud.Result
	err    error
	calls  int
	fields fraud.Fields
}

func (a *stubAnalyzer) Analyze(_ context.Context, fields fraud.Fields) (fraud.Result, error) {
	a.calls++
	a.fields = fields
	return a.result, a.err
}

type stubVerifier struct {
	summary entity.VerificationSummary
	err     error
}

func (v *stubVerifier) Verify(context.Context, verify.ClaimContext, map[constants.DocumentCategory]verify.DocumentInput) (entity.VerificationSummary, error) {
	return v.summary, v.err
}

func newTestService(claims *stubClaimRepo, docs *stubDocRepo, verifs *stubVerifRepo, store *stubStore, ex *stubExtractor, an *stubAnalyzer, ve *stubVerifier) *Service {
	return NewService(claims, docs, verifs, store, ex, an, ve, nil)
}

func amt(v float64) *float64 { return &v }

func validSubmit() SubmitClaimRequest {
	return SubmitClaimRequest{
		FullName:         "Ada Obi",
		Email:            "ada@example.com",
		PolicyNumber:     "POL-2291",
		ClaimType:        constants.ClaimTypeAuto,
		IncidentDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		IncidentLocation: "Lagos",
		Description:      "rear-ended at a junction",
		Amount:           amt(1200.50),
	}
}

func TestSubmitClaim_PersistsAssessment(t *testing.T) {
	claims := newStubClaimRepo()
	an := &stubAnalyzer{result: fraud.Result{
		FraudRiskScore: 62,
		RiskLevel:      constants.RiskLevelMedium,
		Recommendation: constants.RecommendationReview,
		KeyFindings:    []string{"amount above median for claim type"},
	}}
	s := newTestService(claims, &stubDocRepo{}, newStubVerifRepo(), &stubStore{}, &stubExtractor{}, an, &stubVerifier{})

	claim, err := s.SubmitClaim(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("SubmitClaim: %v", err)
	}
	if claim.FraudRiskScore != 62 || claim.RiskLevel != constants.RiskLevelMedium {
		t.Fatalf("assessment not persisted: score=%d level=%s", claim.FraudRiskScore, claim.RiskLevel)
	}
	if claim.Status != constants.ClaimStatusSubmitted {
		t.Fatalf("status = %s, want SUBMITTED", claim.Status)
	}
	if claim.VerificationStatus != constants.VerificationPending {
		t.Fatalf("verification status = %s, want PENDING", claim.VerificationStatus)
	}
	if an.calls != 1 {
		t.Fatalf("analyzer calls = %d, want 1", an.calls)
	}
}

func TestSubmitClaim_ZeroAmountIsNotMissing(t *testing.T) {
	claims := newStubClaimRepo()
	an := &stubAnalyzer{result: fraud.FallbackResult()}
	s := newTestService(claims, &stubDocRepo{}, newStubVerifRepo(), &stubStore{}, &stubExtractor{}, an, &stubVerifier{})

	req := validSubmit()
	req.Amount = amt(0)
	claim, err := s.SubmitClaim(context.Background(), req)
	if err != nil {
		t.Fatalf("SubmitClaim with zero amount: %v", err)
	}
	if an.fields.ClaimAmount != "0.00" {
		t.Fatalf("analyzer saw amount %q, want \"0.00\"", an.fields.ClaimAmount)
	}
	if claim.Amount != 0 {
		t.Fatalf("persisted amount = %v, want 0", claim.Amount)
	}
	if claims.created != 1 {
		t.Fatalf("claims created = %d, want 1", claims.created)
	}
}

func TestSubmitClaim_UnsetAmountReadsAsEmpty(t *testing.T) {
	claims := newStubClaimRepo()
	an := &stubAnalyzer{err: &common.MissingFieldError{Fields: []string{"claimAmount"}}}
	s := newTestService(claims, &stubDocRepo{}, newStubVerifRepo(), &stubStore{}, &stubExtractor{}, an, &stubVerifier{})

	req := validSubmit()
	req.Amount = nil
	_, err := s.SubmitClaim(context.Background(), req)

	var mfe *common.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if an.fields.ClaimAmount != "" {
		t.Fatalf("analyzer saw amount %q, want empty for unset amount", an.fields.ClaimAmount)
	}
	if claims.created != 0 {
		t.Fatalf("claim was persisted despite missing amount")
	}
}

func TestSubmitClaim_MissingFieldsCreatesNothing(t *testing.T) {
	claims := newStubClaimRepo()
	an := &stubAnalyzer{err: &common.MissingFieldError{Fields: []string{"description"}}}
	s := newTestService(claims, &stubDocRepo{}, newStubVerifRepo(), &stubStore{}, &stubExtractor{}, an, &stubVerifier{})

	req := validSubmit()
	req.Description = ""
	_, err := s.SubmitClaim(context.Background(), req)

	var mfe *common.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if claims.created != 0 {
		t.Fatalf("claim was persisted despite missing fields")
	}
}

func TestUploadDocument_StoresAndExtracts(t *testing.T) {
	claims := newStubClaimRepo()
	docs := &stubDocRepo{}
	store := &stubStore{}
	s := newTestService(claims, docs, newStubVerifRepo(), store, &stubExtractor{text: "INVOICE TOTAL 1200.50"}, &stubAnalyzer{result: fraud.FallbackResult()}, &stubVerifier{})

	claim, err := s.SubmitClaim(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("SubmitClaim: %v", err)
	}

	doc, err := s.UploadDocument(context.Background(), UploadDocumentRequest{
		ClaimID:     claim.ID,
		Category:    constants.CategoryInvoice,
		Filename:    "invoice.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50},
	})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}
	if store.puts != 1 {
		t.Fatalf("store puts = %d, want 1", store.puts)
	}
	if doc.ExtractedText != "INVOICE TOTAL 1200.50" {
		t.Fatalf("extracted text = %q", doc.ExtractedText)
	}
	if doc.StoragePath == "" {
		t.Fatalf("storage path not recorded")
	}
}

func TestUploadDocument_OCRFailureKeepsDocument(t *testing.T) {
	claims := newStubClaimRepo()
	docs := &stubDocRepo{}
	ex := &stubExtractor{err: &common.UpstreamError{Stage: common.StageExtract, Cause: errors.New("tesseract exited 1")}}
	s := newTestService(claims, docs, newStubVerifRepo(), &stubStore{}, ex, &stubAnalyzer{result: fraud.FallbackResult()}, &stubVerifier{})

	claim, _ := s.SubmitClaim(context.Background(), validSubmit())
	doc, err := s.UploadDocument(context.Background(), UploadDocumentRequest{
		ClaimID:     claim.ID,
		Category:    constants.CategoryIdentity,
		Filename:    "id.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xff},
	})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}
	if doc.ExtractedText != "" {
		t.Fatalf("extracted text = %q, want empty after OCR failure", doc.ExtractedText)
	}
}

func TestUploadDocument_RejectsOversize(t *testing.T) {
	claims := newStubClaimRepo()
	s := newTestService(claims, &stubDocRepo{}, newStubVerifRepo(), &stubStore{}, &stubExtractor{}, &stubAnalyzer{result: fraud.FallbackResult()}, &stubVerifier{})

	claim, _ := s.SubmitClaim(context.Background(), validSubmit())
	_, err := s.UploadDocument(context.Background(), UploadDocumentRequest{
		ClaimID:     claim.ID,
		Category:    constants.CategoryInvoice,
		Filename:    "huge.png",
		ContentType: "image/png",
		Data:        make([]byte, constants.MaxUploadBytes+1),
	})
	if err == nil {
		t.Fatal("oversize upload accepted")
	}
}

func TestVerifyClaim_PersistsResultsAndSummary(t *testing.T) {
	claims := newStubClaimRepo()
	docs := &stubDocRepo{}
	verifs := newStubVerifRepo()
	summary := entity.VerificationSummary{
		OverallConfidence: 90,
		Status:            constants.VerificationVerified,
		Results: map[constants.DocumentCategory]entity.VerificationResult{
			constants.CategoryIdentity: {Category: constants.CategoryIdentity, IsValid: true, Confidence: 90, MatchScore: 88},
		},
	}
	s := newTestService(claims, docs, verifs, &stubStore{}, &stubExtractor{text: "some text"}, &stubAnalyzer{result: fraud.FallbackResult()}, &stubVerifier{summary: summary})

	claim, _ := s.SubmitClaim(context.Background(), validSubmit())
	_, _ = s.UploadDocument(context.Background(), UploadDocumentRequest{
		ClaimID:     claim.ID,
		Category:    constants.CategoryIdentity,
		Filename:    "id.png",
		ContentType: "image/png",
		Data:        []byte{1},
	})

	got, err := s.VerifyClaim(context.Background(), claim.ID)
	if err != nil {
		t.Fatalf("VerifyClaim: %v", err)
	}
	if got.Status != constants.VerificationVerified {
		t.Fatalf("status = %s, want VERIFIED", got.Status)
	}
	if len(verifs.stored[claim.ID]) != 1 {
		t.Fatalf("stored results = %d, want 1", len(verifs.stored[claim.ID]))
	}
	if claims.claims[claim.ID].VerificationStatus != constants.VerificationVerified {
		t.Fatalf("claim verification status not updated")
	}
	if claims.claims[claim.ID].OverallConfidence != 90 {
		t.Fatalf("claim overall confidence = %v, want 90", claims.claims[claim.ID].OverallConfidence)
	}
}

func TestVerifyClaim_NoDocumentsStaysPending(t *testing.T) {
	claims := newStubClaimRepo()
	verifs := newStubVerifRepo()
	s := newTestService(claims, &stubDocRepo{}, verifs, &stubStore{}, &stubExtractor{}, &stubAnalyzer{result: fraud.FallbackResult()}, &stubVerifier{})

	claim, _ := s.SubmitClaim(context.Background(), validSubmit())
	summary, err := s.VerifyClaim(context.Background(), claim.ID)
	if err != nil {
		t.Fatalf("VerifyClaim: %v", err)
	}
	if summary.Status != constants.VerificationPending {
		t.Fatalf("status = %s, want PENDING", summary.Status)
	}
	if len(verifs.stored[claim.ID]) != 0 {
		t.Fatalf("results stored for claim without documents")
	}
}

func TestVerifyClaim_PartialResultsSurviveFailure(t *testing.T) {
	claims := newStubClaimRepo()
	docs := &stubDocRepo{}
	verifs := newStubVerifRepo()
	partial := entity.VerificationSummary{
		OverallConfidence: 85,
		Status:            constants.VerificationVerified,
		Results: map[constants.DocumentCategory]entity.VerificationResult{
			constants.CategoryIdentity: {Category: constants.CategoryIdentity, IsValid: true, Confidence: 85},
		},
	}
	verr := common.NewContractViolation("parse", "invoice", "response is not a JSON object", "oops")
	s := newTestService(claims, docs, verifs, &stubStore{}, &stubExtractor{text: "text"}, &stubAnalyzer{result: fraud.FallbackResult()}, &stubVerifier{summary: partial, err: verr})

	claim, _ := s.SubmitClaim(context.Background(), validSubmit())
	_, _ = s.UploadDocument(context.Background(), UploadDocumentRequest{
		ClaimID: claim.ID, Category: constants.CategoryIdentity,
		Filename: "id.png", ContentType: "image/png", Data: []byte{1},
	})

	summary, err := s.VerifyClaim(context.Background(), claim.ID)
	if err == nil {
		t.Fatal("expected verification error to propagate")
	}
	if summary == nil || len(summary.Results) != 1 {
		t.Fatalf("partial summary not returned")
	}
	if len(verifs.stored[claim.ID]) != 1 {
		t.Fatalf("partial results not persisted")
	}
}
