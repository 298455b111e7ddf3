package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VSP7988/maranatha-api/domain/dto"
	"github.com/VSP7988/maranatha-api/domain/models"
	"github.com/VSP7988/maranatha-api/pkg/config"
)

type fakeUserRepo struct {
	users map[string]*models.User // by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Count(context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.org",
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "correct-horse")
	svc := NewUserService(repo, &config.JWTConfig{Secret: "test"})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "correct-horse")
	svc := NewUserService(repo, &config.JWTConfig{Secret: "test"})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &config.JWTConfig{Secret: "test"})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdminSeedsEmptyTable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &config.JWTConfig{Secret: "test"})

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "admin@example.org", "initial-password"))
	require.Len(t, repo.users, 1)

	// Seeding is idempotent once a user exists.
	require.NoError(t, svc.EnsureAdmin(context.Background(), "other", "other@example.org", "pw"))
	assert.Len(t, repo.users, 1)
}

func TestEnsureAdminSkipsWithoutPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &config.JWTConfig{Secret: "test"})

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "admin@example.org", ""))
	assert.Empty(t, repo.users)
}
