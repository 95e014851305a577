package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
)

// Document is one uploaded file attached to a claim.
type Document struct {
	ID            uuid.UUID                  `json:"id"`
	ClaimID       uuid.UUID                  `json:"claim_id"`
	Category      constants.DocumentCategory `json:"category"`
	Filename      string                     `json:"filename"`
	ExtractedText string                     `json:"extracted_text"`
	StoragePath   string                     `json:"storage_path"`
	ContentType   string                     `json:"content_type"`
	FileSize      int64                      `json:"file_size"`
	UploadedAt    time.Time                  `json:"uploaded_at"`
}
