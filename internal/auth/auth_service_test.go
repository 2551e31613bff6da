package auth_test

import (
	"context"
	"testing"

	"go-shopops/internal/auth"
	autherrors "go-shopops/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	byEmail map[string]*auth.Account
	byID    map[uuid.UUID]*auth.Account
}

func (f *fakeAuthRepository) GetByEmail(_ context.Context, email string) (*auth.Account, error) {
	if account, ok := f.byEmail[email]; ok {
		return account, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(_ context.Context, id uuid.UUID) (*auth.Account, error) {
	if account, ok := f.byID[id]; ok {
		return account, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testAccount(t *testing.T, password string) *auth.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &auth.Account{
		ID:       uuid.New(),
		Email:    "admin@shop.local",
		Name:     "관리자",
		Password: string(hash),
		Role:     auth.RoleAdmin,
		IsActive: true,
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	account := testAccount(t, "secret123")
	repo := &fakeAuthRepository{
		byEmail: map[string]*auth.Account{account.Email: account},
	}
	svc := auth.NewService(repo)

	resp, err := svc.Login(context.Background(), account.Email, "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, account.Email, resp.User.Email)
	assert.Equal(t, auth.RoleAdmin, resp.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	account := testAccount(t, "secret123")
	repo := &fakeAuthRepository{
		byEmail: map[string]*auth.Account{account.Email: account},
	}
	svc := auth.NewService(repo)

	_, err := svc.Login(context.Background(), account.Email, "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@shop.local", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	account := testAccount(t, "secret123")
	repo := &fakeAuthRepository{
		byEmail: map[string]*auth.Account{account.Email: account},
		byID:    map[uuid.UUID]*auth.Account{account.ID: account},
	}
	svc := auth.NewService(repo)

	login, err := svc.Login(context.Background(), account.Email, "secret123")
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(context.Background(), "garbage.token.here")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestAuthService_GetMe(t *testing.T) {
	account := testAccount(t, "secret123")
	repo := &fakeAuthRepository{
		byID: map[uuid.UUID]*auth.Account{account.ID: account},
	}
	svc := auth.NewService(repo)

	resp, err := svc.GetMe(context.Background(), account.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, account.Email, resp.Email)

	_, err = svc.GetMe(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
