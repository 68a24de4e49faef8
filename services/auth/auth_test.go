package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	userRepo "docbook/database/repository/user"
	"docbook/models"

	"go.uber.org/zap"
)

func newTestAuth() *DefaultAuthService {
	return &DefaultAuthService{
		Repo:     userRepo.NewMemoryUserRepo(),
		Revoked:  NewMemoryRevocationStore(),
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
		Logger:   zap.NewNop(),
	}
}

func TestRegisterLoginLogout(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	reg, err := svc.Register(ctx, models.UserRegistrationData{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Phone:    "555-0100",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Token == "" || reg.User.ID == "" {
		t.Fatalf("unexpected response: %+v", reg)
	}

	if _, err := svc.Login(ctx, "jane@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: %v", err)
	}

	login, err := svc.Login(ctx, "JANE@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	user, err := svc.CurrentUser(ctx, login.Token)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.ID != reg.User.ID || user.Email != "jane@example.com" {
		t.Errorf("resolved user = %+v", user)
	}

	if err := svc.Logout(ctx, login.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.CurrentUser(ctx, login.Token); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("expected ErrTokenRevoked, got %v", err)
	}
	if _, err := svc.CurrentUser(ctx, reg.Token); err != nil {
		t.Errorf("logout revoked an unrelated token: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()
	data := models.UserRegistrationData{Name: "Jane", Email: "jane@example.com", Password: "password123"}

	if _, err := svc.Register(ctx, data); err != nil {
		t.Fatalf("Register: %v", err)
	}
	data.Email = "JANE@example.com"
	if _, err := svc.Register(ctx, data); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCurrentUserRejectsBadTokens(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.CurrentUser(ctx, "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: %v", err)
	}

	other := newTestAuth()
	other.Secret = []byte("another-secret")
	resp, err := other.Register(ctx, models.UserRegistrationData{Name: "X", Email: "x@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.CurrentUser(ctx, resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign signature: %v", err)
	}
}

func TestSeedUserIsIdempotent(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()
	demo := models.User{ID: "user-demo", Name: "Jane Doe", Email: "jane@docbook.dev"}

	for i := 0; i < 2; i++ {
		if err := SeedUser(ctx, svc.Repo, demo, "password123"); err != nil {
			t.Fatalf("SeedUser #%d: %v", i+1, err)
		}
	}
	resp, err := svc.Login(ctx, "jane@docbook.dev", "password123")
	if err != nil {
		t.Fatalf("Login as seeded user: %v", err)
	}
	if resp.User.ID != "user-demo" {
		t.Errorf("user id = %q", resp.User.ID)
	}
}
