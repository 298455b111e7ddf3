package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/VSP7988/maranatha-api/domain/dto"
	"github.com/VSP7988/maranatha-api/domain/models"
	"github.com/VSP7988/maranatha-api/domain/repositories"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/config"
	"github.com/VSP7988/maranatha-api/pkg/logger"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenExpiry = 24 * time.Hour

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	jwtCfg   *config.JWTConfig
}

func NewUserService(userRepo repositories.UserRepository, jwtCfg *config.JWTConfig) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Same error for unknown user and wrong password.
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtCfg.Secret, tokenExpiry)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Admin logged in", "username", user.Username)
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	}, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// EnsureAdmin seeds the configured admin account when the users table
// is empty, so a fresh deployment can log in immediately.
func (s *UserServiceImpl) EnsureAdmin(ctx context.Context, username, email, password string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		logger.WarnContext(ctx, "No admin password configured, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Seeded initial admin account", "username", username)
	return nil
}
