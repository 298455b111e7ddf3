package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/VSP7988/maranatha-api/domain/dto"
	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/config"
	"github.com/VSP7988/maranatha-api/pkg/logger"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

// UploadServiceImpl runs the multi-file upload pipeline. Files are
// uploaded sequentially; a failed file keeps its slot in the response
// with an empty URL, while a missing bucket aborts the whole batch.
type UploadServiceImpl struct {
	storage ports.StoragePort
	cfg     *config.StorageConfig
}

func NewUploadService(storage ports.StoragePort, cfg *config.StorageConfig) services.UploadService {
	return &UploadServiceImpl{storage: storage, cfg: cfg}
}

func (s *UploadServiceImpl) UploadBatch(ctx context.Context, prefix string, kind services.UploadKind, files []*multipart.FileHeader) (*dto.UploadBatchResponse, error) {
	if len(files) == 0 {
		return nil, errors.New("no files in upload request")
	}

	bucket, err := s.bucketFor(kind)
	if err != nil {
		return nil, err
	}
	prefix = utils.SanitizePrefix(prefix)

	resp := &dto.UploadBatchResponse{}
	if max := s.cfg.MaxBatchFiles; max > 0 && len(files) > max {
		resp.Dropped = len(files) - max
		resp.Notice = fmt.Sprintf("Only the first %d files of %d were accepted", max, len(files))
		files = files[:max]
	}

	for _, fh := range files {
		result := dto.UploadResult{FileName: fh.Filename}

		url, err := s.uploadOne(ctx, bucket, prefix, kind, fh)
		if err != nil {
			if errors.Is(err, ports.ErrBucketNotFound) {
				// Deployment error, not a per-file failure. Every
				// remaining file would fail the same way.
				logger.ErrorContext(ctx, "Upload aborted, bucket missing",
					"bucket", bucket, "error", err)
				return nil, err
			}
			logger.WarnContext(ctx, "File upload failed",
				"file", fh.Filename, "error", err)
			result.Error = err.Error()
			resp.Failed++
		} else {
			result.URL = url
			resp.Uploaded++
		}

		resp.Results = append(resp.Results, result)
		resp.URLs = append(resp.URLs, result.URL)
	}

	logger.InfoContext(ctx, "Upload batch settled",
		"bucket", bucket, "uploaded", resp.Uploaded,
		"failed", resp.Failed, "dropped", resp.Dropped)
	return resp, nil
}

func (s *UploadServiceImpl) uploadOne(ctx context.Context, bucket, prefix string, kind services.UploadKind, fh *multipart.FileHeader) (string, error) {
	contentType := fh.Header.Get("Content-Type")
	if err := s.gate(kind, contentType, fh.Size); err != nil {
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	key := s.objectKey(prefix, fh.Filename)
	return s.storage.Upload(ctx, bucket, key, f, fh.Size, contentType)
}

// gate enforces the per-kind MIME whitelist and size ceiling before a
// single byte reaches the store.
func (s *UploadServiceImpl) gate(kind services.UploadKind, contentType string, size int64) error {
	switch kind {
	case services.UploadKindImage:
		if !strings.HasPrefix(contentType, "image/") {
			return fmt.Errorf("%s is not an image type, only image files are accepted", contentType)
		}
		if max := s.cfg.MaxImageSize; max > 0 && size > max {
			return fmt.Errorf("file exceeds the %s image size limit", formatSize(max))
		}
	case services.UploadKindPDF:
		if contentType != "application/pdf" {
			return fmt.Errorf("%s is not a PDF, only application/pdf is accepted", contentType)
		}
	default:
		return fmt.Errorf("unknown upload kind %q", kind)
	}
	return nil
}

func (s *UploadServiceImpl) bucketFor(kind services.UploadKind) (string, error) {
	switch kind {
	case services.UploadKindImage:
		return s.cfg.ImagesBucket, nil
	case services.UploadKindPDF:
		return s.cfg.PDFsBucket, nil
	default:
		return "", fmt.Errorf("unknown upload kind %q", kind)
	}
}

// formatSize renders a byte ceiling in the largest unit that divides
// it exactly, so a 512KB limit never reads as 0MB.
func formatSize(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= kb && n%kb == 0:
		return fmt.Sprintf("%dKB", n/kb)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

// objectKey builds <prefix>/<unix-ms>-<token>.<ext>, keeping only the
// original file's extension.
func (s *UploadServiceImpl) objectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	token := utils.GenerateRandomString(8)
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixMilli(), token, ext)
}
