package repositories

import (
	"context"

	"github.com/VSP7988/maranatha-api/domain/models"
)

type SettingRepository interface {
	GetAll(ctx context.Context) ([]models.SiteSetting, error)
	GetBySection(ctx context.Context, section string) ([]models.SiteSetting, error)
	// Upsert writes one value keyed by (section, key).
	Upsert(ctx context.Context, setting *models.SiteSetting) error
	Delete(ctx context.Context, section, key string) error
}
