package serviceimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/repositories"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/infrastructure/redis"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

const publicCacheTTL = 60 * time.Second

// PublicContentServiceImpl serves the public site panels. A panel must
// never render empty: any database failure or empty result set falls
// back to the category's fixed sample dataset.
type PublicContentServiceImpl[T any] struct {
	repo        repositories.ContentRepository[T]
	spec        content.Spec
	cache       *redis.Client // optional
	fallbackFor func(discriminator string) []T
}

func NewPublicContentService[T any](
	repo repositories.ContentRepository[T],
	spec content.Spec,
	cache *redis.Client,
	fallbackFor func(discriminator string) []T,
) services.PublicContentService[T] {
	return &PublicContentServiceImpl[T]{
		repo:        repo,
		spec:        spec,
		cache:       cache,
		fallbackFor: fallbackFor,
	}
}

func (s *PublicContentServiceImpl[T]) ListActive(ctx context.Context, discriminator string, limit int) ([]T, bool) {
	if limit <= 0 {
		limit = s.spec.PublicLimit
	}

	key := s.cacheKey(discriminator, limit)
	if rows, ok := s.fromCache(ctx, key); ok {
		return rows, false
	}

	rows, err := s.repo.List(ctx, content.ListOptions{
		ActiveOnly:    true,
		Discriminator: discriminator,
		Limit:         limit,
	})
	if err != nil {
		logger.WarnContext(ctx, "Public fetch failed, serving fallback content",
			"category", s.spec.Name, "error", err)
		return s.fallback(discriminator, limit), true
	}
	if len(rows) == 0 {
		return s.fallback(discriminator, limit), true
	}

	s.toCache(ctx, key, rows)
	return rows, false
}

func (s *PublicContentServiceImpl[T]) fallback(discriminator string, limit int) []T {
	rows := s.fallbackFor(discriminator)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func (s *PublicContentServiceImpl[T]) cacheKey(discriminator string, limit int) string {
	key := "public:" + s.spec.Table
	if discriminator != "" {
		key += ":" + discriminator
	}
	if limit > 0 {
		key += fmt.Sprintf(":%d", limit)
	}
	return key
}

func (s *PublicContentServiceImpl[T]) fromCache(ctx context.Context, key string) ([]T, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var rows []T
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, false
	}
	if len(rows) == 0 {
		return nil, false
	}
	return rows, true
}

func (s *PublicContentServiceImpl[T]) toCache(ctx context.Context, key string, rows []T) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), publicCacheTTL); err != nil {
		logger.WarnContext(ctx, "Failed to cache public content",
			"category", s.spec.Name, "error", err)
	}
}
