package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/VSP7988/maranatha-api/domain/content"
)

// ContentRepository is the one data-access surface every content
// category shares. It is instantiated once per category with the
// category's Spec; there are no per-category repository types.
type ContentRepository[T any] interface {
	Create(ctx context.Context, row *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	// Update persists the full row, writing nil optionals as NULL.
	Update(ctx context.Context, row *T) error
	// UpdateFields writes only the given columns (used by toggle-active).
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts content.ListOptions) ([]T, error)
	// MaxPosition returns the highest position among siblings, 0 when
	// the category (or the discriminator slice of it) is empty.
	MaxPosition(ctx context.Context, discriminator string) (int, error)
	Count(ctx context.Context) (int64, error)
	// MediaURLs returns every non-null value of the category's media
	// columns, for the storage orphan audit.
	MediaURLs(ctx context.Context) ([]string, error)
}
