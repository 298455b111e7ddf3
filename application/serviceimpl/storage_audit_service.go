package serviceimpl

import (
	"context"
	"sync"

	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

// MediaSource yields every storage URL a content category currently
// references. Each category repository registers one.
type MediaSource struct {
	Category string
	URLs     func(ctx context.Context) ([]string, error)
}

// StorageAuditService runs the nightly orphan audit: objects that no
// content row references anymore get counted and logged, never
// deleted. Rows and objects have decoupled lifecycles on purpose, so
// the audit flags drift for the operator instead of fixing it.
type StorageAuditService struct {
	storage ports.StoragePort
	buckets []string

	mu      sync.Mutex
	sources []MediaSource
}

func NewStorageAuditService(storage ports.StoragePort, buckets []string) *StorageAuditService {
	return &StorageAuditService{
		storage: storage,
		buckets: buckets,
	}
}

// AddSource registers a content category's media references.
func (s *StorageAuditService) AddSource(source MediaSource) {
	s.mu.Lock()
	s.sources = append(s.sources, source)
	s.mu.Unlock()
}

// BucketAuditReport summarizes one bucket after an audit pass.
type BucketAuditReport struct {
	Bucket      string
	Objects     int
	Orphans     int
	OrphanBytes int64
}

// Run performs one audit pass over every configured bucket.
func (s *StorageAuditService) Run(ctx context.Context) []BucketAuditReport {
	referenced, ok := s.collectReferences(ctx)
	if !ok {
		return nil
	}

	reports := make([]BucketAuditReport, 0, len(s.buckets))
	for _, bucket := range s.buckets {
		reports = append(reports, s.auditBucket(ctx, bucket, referenced))
	}
	return reports
}

// collectReferences gathers every URL the database still points at.
// A failing source aborts the pass: a partial reference set would make
// live objects look orphaned.
func (s *StorageAuditService) collectReferences(ctx context.Context) (map[string]struct{}, bool) {
	s.mu.Lock()
	sources := make([]MediaSource, len(s.sources))
	copy(sources, s.sources)
	s.mu.Unlock()

	referenced := make(map[string]struct{})
	for _, src := range sources {
		urls, err := src.URLs(ctx)
		if err != nil {
			logger.WarnContext(ctx, "Storage audit skipped, media source failed",
				"category", src.Category, "error", err)
			return nil, false
		}
		for _, u := range urls {
			referenced[u] = struct{}{}
		}
	}
	return referenced, true
}

func (s *StorageAuditService) auditBucket(ctx context.Context, bucket string, referenced map[string]struct{}) BucketAuditReport {
	report := BucketAuditReport{Bucket: bucket}

	objects, err := s.storage.ListObjects(ctx, bucket, "")
	if err != nil {
		logger.WarnContext(ctx, "Storage audit could not list bucket",
			"bucket", bucket, "error", err)
		return report
	}
	report.Objects = len(objects)

	var sample []string
	for _, obj := range objects {
		url := s.storage.PublicURL(bucket, obj.Key)
		if _, ok := referenced[url]; ok {
			continue
		}
		report.Orphans++
		report.OrphanBytes += obj.Size
		if len(sample) < 10 {
			sample = append(sample, obj.Key)
		}
	}

	if report.Orphans == 0 {
		logger.InfoContext(ctx, "Storage audit clean",
			"bucket", bucket, "objects", report.Objects)
		return report
	}
	logger.WarnContext(ctx, "Storage audit found unreferenced objects",
		"bucket", bucket,
		"objects", report.Objects,
		"orphans", report.Orphans,
		"orphan_bytes", report.OrphanBytes,
		"sample", sample)
	return report
}
