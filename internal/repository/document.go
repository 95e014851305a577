package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/gen/ent"
	"github.com/claimdesk/claims-intake/gen/ent/document"
	"github.com/claimdesk/claims-intake/internal/entity"
	"github.com/claimdesk/claims-intake/internal/utils"
)

// CreateDocumentRequest wraps parameters for recording an uploaded document.
type CreateDocumentRequest struct {
	ClaimID       uuid.UUID
	Category      constants.DocumentCategory
	Filename      string
	ContentType   string
	FileSize      int64
	StoragePath   string
	ExtractedText string
}

type DocumentRepository interface {
	CreateDocument(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) CreateDocument(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error) {
	d, err := r.client.Document.Create().
		SetClaimID(request.ClaimID).
		SetCategory(string(request.Category)).
		SetFilename(request.Filename).
		SetContentType(request.ContentType).
		SetFileSize(request.FileSize).
		SetStoragePath(request.StoragePath).
		SetExtractedText(request.ExtractedText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "claim_id", request.ClaimID, "category", request.Category, "error", err)
		return nil, err
	}
	return utils.ToDocument(d), nil
}

func (r *documentRepository) GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	d, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(d), nil
}

func (r *documentRepository) ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.Document, error) {
	docs, err := r.client.Document.Query().
		Where(document.ClaimID(claimID)).
		Order(document.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "claim_id", claimID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}
