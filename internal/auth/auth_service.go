package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-shopops/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(account, 15*time.Minute)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(account, 7*24*time.Hour)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         mapToResponse(account),
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return LoginResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return LoginResponse{}, autherrors.ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidToken
	}

	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return LoginResponse{}, autherrors.ErrUserNotFound
	}

	newAccess, err := s.generateToken(account, 15*time.Minute)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.generateToken(account, 7*24*time.Hour)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
		User:         mapToResponse(account),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(account)
	return &resp, nil
}

func (s *service) generateToken(account *Account, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": account.ID.String(),
		"role":    account.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(account *Account) AuthResponse {
	return AuthResponse{
		ID:    account.ID.String(),
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	}
}
