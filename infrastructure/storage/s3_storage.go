package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

// S3Storage implements StoragePort for S3-compatible object stores
// (MinIO / Cloudflare R2). Unlike a single-bucket setup, every call
// names its bucket: the site keeps images and pdfs apart.
type S3Storage struct {
	client    *minio.Client
	publicURL string
	endpoint  string
	useSSL    bool
}

type S3StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	PublicURL string // optional CDN/public base URL
	// Buckets checked at startup so a missing one is reported before
	// the first admin upload fails.
	Buckets []string
}

func NewS3Storage(config S3StorageConfig) (ports.StoragePort, error) {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 50,
		MaxConnsPerHost:     100,
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure:    config.UseSSL,
		Region:    config.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	s := &S3Storage{
		client:    client,
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
		endpoint:  config.Endpoint,
		useSSL:    config.UseSSL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A missing bucket is a deployment error, not a reason to refuse
	// boot: warn with the exact bucket name the operator must create.
	for _, bucket := range config.Buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			logger.Warn("Could not verify storage bucket", "bucket", bucket, "error", err)
			continue
		}
		if !exists {
			logger.Warn("Storage bucket missing, uploads to it will fail",
				"bucket", bucket,
				"hint", fmt.Sprintf("create bucket %q with public-read access", bucket),
			)
		}
	}

	logger.Info("S3 storage initialized",
		"endpoint", config.Endpoint,
		"buckets", strings.Join(config.Buckets, ","),
		"ssl", config.UseSSL,
	)

	return s, nil
}

func normalizeKey(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "\\", "/")
}

// wrapBucketErr maps the S3 NoSuchBucket code onto the distinguished
// ErrBucketNotFound so callers can tell misconfiguration from a
// transient fault.
func wrapBucketErr(err error, bucket string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchBucket" {
		return ports.BucketNotFoundError(bucket)
	}
	return err
}

func (s *S3Storage) Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) (string, error) {
	key := normalizeKey(path)

	_, err := s.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", wrapBucketErr(err, bucket))
	}

	logger.Debug("Object uploaded", "bucket", bucket, "key", key, "content_type", contentType)

	return s.PublicURL(bucket, key), nil
}

func (s *S3Storage) Delete(ctx context.Context, bucket, path string) error {
	key := normalizeKey(path)

	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", wrapBucketErr(err, bucket))
	}

	logger.Debug("Object deleted", "bucket", bucket, "key", key)
	return nil
}

func (s *S3Storage) PublicURL(bucket, path string) string {
	key := normalizeKey(path)

	if s.publicURL != "" {
		return s.publicURL + "/" + bucket + "/" + key
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, bucket, key)
}

func (s *S3Storage) ListObjects(ctx context.Context, bucket, prefix string) ([]ports.ObjectInfo, error) {
	prefix = normalizeKey(prefix)

	objectsCh := s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var objects []ports.ObjectInfo
	for obj := range objectsCh {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", wrapBucketErr(obj.Err, bucket))
		}
		objects = append(objects, ports.ObjectInfo{Key: obj.Key, Size: obj.Size})
	}
	return objects, nil
}

func (s *S3Storage) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return s.client.BucketExists(ctx, bucket)
}

func (s *S3Storage) ProviderName() string {
	return "s3"
}
