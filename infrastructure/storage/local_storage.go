package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/VSP7988/maranatha-api/domain/ports"
)

// LocalStorage implements StoragePort on the local filesystem for
// development. Each bucket maps to a subdirectory of basePath.
type LocalStorage struct {
	basePath string
	baseURL  string
}

type LocalStorageConfig struct {
	BasePath string // ./uploads
	BaseURL  string // http://localhost:8080/files
}

func NewLocalStorage(config LocalStorageConfig) (ports.StoragePort, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

func (l *LocalStorage) bucketDir(bucket string) string {
	return filepath.Join(l.basePath, bucket)
}

func (l *LocalStorage) Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) (string, error) {
	key := normalizeKey(path)
	fullPath := filepath.Join(l.bucketDir(bucket), filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.PublicURL(bucket, key), nil
}

func (l *LocalStorage) Delete(ctx context.Context, bucket, path string) error {
	key := normalizeKey(path)
	fullPath := filepath.Join(l.bucketDir(bucket), filepath.FromSlash(key))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (l *LocalStorage) PublicURL(bucket, path string) string {
	key := normalizeKey(path)
	return l.baseURL + "/" + bucket + "/" + key
}

func (l *LocalStorage) ListObjects(ctx context.Context, bucket, prefix string) ([]ports.ObjectInfo, error) {
	root := l.bucketDir(bucket)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, ports.BucketNotFoundError(bucket)
	}

	var objects []ports.ObjectInfo
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix == "" || strings.HasPrefix(key, normalizeKey(prefix)) {
			objects = append(objects, ports.ObjectInfo{Key: key, Size: info.Size()})
		}
		return nil
	})
	return objects, err
}

func (l *LocalStorage) BucketExists(ctx context.Context, bucket string) (bool, error) {
	info, err := os.Stat(l.bucketDir(bucket))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (l *LocalStorage) ProviderName() string {
	return "local"
}
