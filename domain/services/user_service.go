package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/VSP7988/maranatha-api/domain/dto"
	"github.com/VSP7988/maranatha-api/domain/models"
)

type UserService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// EnsureAdmin seeds the configured admin account when the users
	// table is empty, so a fresh deployment can log in.
	EnsureAdmin(ctx context.Context, username, email, password string) error
}
