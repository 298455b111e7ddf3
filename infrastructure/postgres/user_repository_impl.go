package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VSP7988/maranatha-api/domain/models"
	"github.com/VSP7988/maranatha-api/domain/repositories"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) session(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	return r.db.WithContext(ctx), nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	db, err := r.session(ctx)
	if err != nil {
		return err
	}
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	db, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	db, err := r.session(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	err = db.Model(&models.User{}).Count(&count).Error
	return count, err
}
