package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/repositories"
)

// ContentRepositoryImpl is the single gorm-backed implementation behind
// every content category. The category's Spec supplies table name,
// ordering and discriminator column.
type ContentRepositoryImpl[T any] struct {
	db   *gorm.DB
	spec content.Spec
}

func NewContentRepository[T any](db *gorm.DB, spec content.Spec) repositories.ContentRepository[T] {
	return &ContentRepositoryImpl[T]{db: db, spec: spec}
}

// session guards the degraded no-database mode: with the data layer
// unconfigured every call fails like a transient error, which the
// public path masks with fallback content.
func (r *ContentRepositoryImpl[T]) session(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	return r.db.WithContext(ctx), nil
}

func (r *ContentRepositoryImpl[T]) Create(ctx context.Context, row *T) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	return db.Create(row).Error
}

func (r *ContentRepositoryImpl[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var row T
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ContentRepositoryImpl[T]) Update(ctx context.Context, row *T) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	// Save writes every column, so nil optionals persist as NULL.
	return db.Save(row).Error
}

func (r *ContentRepositoryImpl[T]) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	var row T
	return db.Model(&row).Where("id = ?", id).Updates(fields).Error
}

func (r *ContentRepositoryImpl[T]) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	var row T
	return db.Where("id = ?", id).Delete(&row).Error
}

func (r *ContentRepositoryImpl[T]) List(ctx context.Context, opts content.ListOptions) ([]T, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}

	var rows []T
	q := db.Order(r.spec.OrderClause())
	if opts.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if r.spec.Discriminator != "" && opts.Discriminator != "" {
		q = q.Where(fmt.Sprintf("%s = ?", r.spec.Discriminator), opts.Discriminator)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	err = q.Find(&rows).Error
	return rows, err
}

func (r *ContentRepositoryImpl[T]) MaxPosition(ctx context.Context, discriminator string) (int, error) {
	db, err := r.session(ctx)
	if err != nil {
		return 0, err
	}

	var max int
	var row T
	q := db.Model(&row).Select(`COALESCE(MAX("position"), 0)`)
	if r.spec.Discriminator != "" && discriminator != "" {
		q = q.Where(fmt.Sprintf("%s = ?", r.spec.Discriminator), discriminator)
	}
	err = q.Scan(&max).Error
	return max, err
}

func (r *ContentRepositoryImpl[T]) Count(ctx context.Context) (int64, error) {
	db, err := r.session(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	var row T
	err = db.Model(&row).Count(&count).Error
	return count, err
}

func (r *ContentRepositoryImpl[T]) MediaURLs(ctx context.Context) ([]string, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}

	var urls []string
	var row T
	for _, col := range r.spec.MediaColumns {
		var values []string
		if err := db.Model(&row).
			Where(fmt.Sprintf("%s IS NOT NULL AND %s <> ''", col, col)).
			Pluck(col, &values).Error; err != nil {
			return nil, err
		}
		urls = append(urls, values...)
	}
	return urls, nil
}
