package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VSP7988/maranatha-api/domain/models"
	"github.com/VSP7988/maranatha-api/domain/repositories"
)

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) repositories.SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) session(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	return r.db.WithContext(ctx), nil
}

func (r *SettingRepositoryImpl) GetAll(ctx context.Context) ([]models.SiteSetting, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var settings []models.SiteSetting
	err = db.Order("section ASC, key ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingRepositoryImpl) GetBySection(ctx context.Context, section string) ([]models.SiteSetting, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var settings []models.SiteSetting
	err = db.Where("section = ?", section).Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingRepositoryImpl) Upsert(ctx context.Context, setting *models.SiteSetting) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}

func (r *SettingRepositoryImpl) Delete(ctx context.Context, section, key string) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	return db.Where("section = ? AND key = ?", section, key).Delete(&models.SiteSetting{}).Error
}
