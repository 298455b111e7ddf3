package services

import (
	"context"

	"github.com/google/uuid"
)

// ContentService is the admin-side CRUD surface of one content
// category. One generic implementation serves every category.
type ContentService[T any] interface {
	// List returns all rows (active and inactive) in admin order,
	// optionally narrowed to one discriminator value.
	List(ctx context.Context, discriminator string) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, row *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, row *T) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ToggleActive flips only is_active (plus updated_at).
	ToggleActive(ctx context.Context, id uuid.UUID) (*T, error)
}

// PublicContentService serves the public panels. ListActive never
// fails: any error or empty result degrades to the category's fixed
// fallback dataset, reported by the second return value.
type PublicContentService[T any] interface {
	ListActive(ctx context.Context, discriminator string, limit int) (rows []T, fallback bool)
}
