package auth

import (
	"context"
	"errors"
	"time"

	userRepo "docbook/database/repository/user"
	"docbook/models"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService signs users in and resolves bearer tokens to users.
type AuthService interface {
	Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// DefaultAuthService issues HS256 tokens and tracks revoked ones.
type DefaultAuthService struct {
	Repo     userRepo.UserRepository
	Revoked  RevocationStore
	Secret   []byte
	TokenTTL time.Duration
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultAuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
