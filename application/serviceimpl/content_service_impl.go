package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/domain/repositories"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/infrastructure/redis"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

// ContentServiceImpl is the single admin CRUD engine shared by every
// content category. P ties the value type T to its pointer methods so
// the engine can reach the embedded Meta and Normalize.
type ContentServiceImpl[T any, P interface {
	content.Row
	*T
}] struct {
	repo      repositories.ContentRepository[T]
	spec      content.Spec
	cache     *redis.Client               // optional
	publisher ports.ContentEventPublisher // optional
}

func NewContentService[T any, P interface {
	content.Row
	*T
}](
	repo repositories.ContentRepository[T],
	spec content.Spec,
	cache *redis.Client,
	publisher ports.ContentEventPublisher,
) services.ContentService[T] {
	return &ContentServiceImpl[T, P]{
		repo:      repo,
		spec:      spec,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *ContentServiceImpl[T, P]) List(ctx context.Context, discriminator string) ([]T, error) {
	return s.repo.List(ctx, content.ListOptions{Discriminator: discriminator})
}

func (s *ContentServiceImpl[T, P]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContentServiceImpl[T, P]) Create(ctx context.Context, row *T) (*T, error) {
	p := P(row)
	p.Normalize()

	meta := p.ContentMeta()
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	if meta.IsActive == nil {
		// An omitted flag means active. An explicit false stays false.
		meta.IsActive = content.Bool(true)
	}

	if s.spec.Positioned && meta.Position == 0 {
		max, err := s.repo.MaxPosition(ctx, s.discriminatorOf(p))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve position: %w", err)
		}
		meta.Position = max + 1
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, ports.ContentActionCreated, meta.ID)
	return row, nil
}

func (s *ContentServiceImpl[T, P]) Update(ctx context.Context, id uuid.UUID, row *T) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := P(row)
	p.Normalize()

	meta := p.ContentMeta()
	prev := P(existing).ContentMeta()

	meta.ID = prev.ID
	meta.CreatedAt = prev.CreatedAt
	meta.UpdatedAt = time.Now().UTC()
	if meta.Position == 0 {
		meta.Position = prev.Position
	}
	if meta.IsActive == nil {
		meta.IsActive = prev.IsActive
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, ports.ContentActionUpdated, id)
	return row, nil
}

func (s *ContentServiceImpl[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.afterMutation(ctx, ports.ContentActionDeleted, id)
	return nil
}

func (s *ContentServiceImpl[T, P]) ToggleActive(ctx context.Context, id uuid.UUID) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	meta := P(existing).ContentMeta()
	next := !meta.Active()
	meta.IsActive = content.Bool(next)
	meta.UpdatedAt = time.Now().UTC()

	fields := map[string]interface{}{
		"is_active":  next,
		"updated_at": meta.UpdatedAt,
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, ports.ContentActionToggled, id)
	return existing, nil
}

func (s *ContentServiceImpl[T, P]) discriminatorOf(p P) string {
	if d, ok := any(p).(content.Discriminated); ok {
		return d.DiscriminatorValue()
	}
	return ""
}

// afterMutation drops the category's cached public reads and announces
// the change. Both sides are best effort.
func (s *ContentServiceImpl[T, P]) afterMutation(ctx context.Context, action string, id uuid.UUID) {
	if s.cache != nil {
		pattern := "public:" + s.spec.Table + "*"
		if _, err := s.cache.ScanAndDelete(ctx, pattern); err != nil {
			logger.WarnContext(ctx, "Failed to invalidate public cache",
				"category", s.spec.Name, "error", err)
		}
	}

	if s.publisher != nil {
		event := ports.ContentEvent{
			Category: s.spec.Name,
			Table:    s.spec.Table,
			Action:   action,
			ID:       id,
			At:       time.Now().UTC(),
		}
		if err := s.publisher.PublishContentChange(ctx, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish content event",
				"category", s.spec.Name, "action", action, "error", err)
		}
	}

	logger.InfoContext(ctx, "Content mutated",
		"category", s.spec.Name, "action", action, "id", id)
}
