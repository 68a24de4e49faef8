package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "docbook/database/repository/user"
	"docbook/models"
	"docbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultAuthService) Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(data.Name),
		Email:        strings.TrimSpace(data.Email),
		Phone:        strings.TrimSpace(data.Phone),
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.Logger.Info("user registered", zap.String("userID", user.ID))
	return s.issue(user)
}

func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.Logger.Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

// Logout revokes token for the rest of its lifetime.
func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(s.Secret, token)
	if err != nil {
		return ErrInvalidToken
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.Revoked.Revoke(ctx, utils.HashToken(token), ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *DefaultAuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := utils.ParseToken(s.Secret, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	revoked, err := s.Revoked.IsRevoked(ctx, utils.HashToken(token))
	if err != nil {
		// Fall back to trusting the signature rather than locking everyone out.
		s.Logger.Warn("CurrentUser: revocation lookup failed", zap.Error(err))
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	user, err := s.Repo.GetByID(ctx, claims.Subject)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *DefaultAuthService) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(s.Secret, user.ID, user.Email, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.TokenTTL),
		User:      user,
	}, nil
}

// SeedUser creates a user with a known password unless the email exists.
func SeedUser(ctx context.Context, repo userRepo.UserRepository, user models.User, password string) error {
	if _, err := repo.GetByEmail(ctx, user.Email); err == nil {
		return nil
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return repo.Create(ctx, &user)
}
