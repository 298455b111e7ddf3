package ports

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrBucketNotFound distinguishes the "bucket does not exist"
// deployment error from a transient upload failure. Callers surface it
// with the bucket name so the operator knows what to create.
var ErrBucketNotFound = errors.New("storage bucket not found")

// BucketNotFoundError wraps ErrBucketNotFound with the bucket name.
func BucketNotFoundError(bucket string) error {
	return fmt.Errorf("%w: bucket %q does not exist, create it in the storage console before uploading", ErrBucketNotFound, bucket)
}

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// StoragePort abstracts the object store (S3-compatible in production,
// local filesystem in development). Returned URLs are permanent and
// assume the buckets are public-read.
type StoragePort interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) (string, error)

	// Delete removes one object. Row deletion never calls this; it
	// exists for operator tooling and tests.
	Delete(ctx context.Context, bucket, path string) error

	// PublicURL builds the permanent URL for an object.
	PublicURL(bucket, path string) string

	// ListObjects returns every object under a prefix ("" = whole bucket).
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)

	// BucketExists reports whether the bucket is reachable.
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// ProviderName identifies the adapter (s3, local).
	ProviderName() string
}
