package services

import (
	"context"
	"mime/multipart"

	"github.com/VSP7988/maranatha-api/domain/dto"
)

// UploadKind selects the bucket and the MIME gate for a batch.
type UploadKind string

const (
	UploadKindImage UploadKind = "image"
	UploadKindPDF   UploadKind = "pdf"
)

// UploadService implements the multi-file upload engine: MIME gate,
// size ceiling, batch cap, sequential per-file upload with per-file
// failure slots, and the distinguished missing-bucket error.
type UploadService interface {
	UploadBatch(ctx context.Context, prefix string, kind UploadKind, files []*multipart.FileHeader) (*dto.UploadBatchResponse, error)
}
