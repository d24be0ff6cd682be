package services

import (
	"context"
	"errors"
	"testing"

	"gu-notepro/internal/config"
	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/pkg/jwt"
	"gu-notepro/internal/pkg/password"
)

func newTestAuth(t *testing.T) (*AuthService, *memRefreshTokenRepo, *config.Config) {
	t.Helper()
	hash, err := password.Hash("Pass")
	if err != nil {
		t.Fatal(err)
	}
	registrar := *testRegistrar
	registrar.Password = hash

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	tokenRepo := newMemRefreshTokenRepo()
	return NewAuthService(newMemStaffRepo(&registrar), tokenRepo, cfg), tokenRepo, cfg
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, tokenRepo, cfg := newTestAuth(t)

	out, err := svc.Login(context.Background(), "reg", "Pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if out.Staff.Password != "" {
		t.Error("credential hash leaked in login output")
	}

	claims, err := jwt.ValidateAccessToken(out.AccessToken, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("issued access token invalid: %v", err)
	}
	if claims.StaffID != "REG" || claims.Role != "STAFF" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := jwt.ValidateRefreshToken(out.RefreshToken, cfg.JWT.RefreshSecret); err != nil {
		t.Fatalf("issued refresh token invalid: %v", err)
	}
	if got := tokenRepo.active("REG"); got != 1 {
		t.Errorf("active sessions = %d, want 1", got)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	if _, err := svc.Login(context.Background(), "REG", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownIDSameError(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	if _, err := svc.Login(context.Background(), "NOBODY", "Pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials (no id probing)", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, tokenRepo, _ := newTestAuth(t)

	first, err := svc.Login(context.Background(), "REG", "Pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Error("refresh did not rotate the token")
	}
	if got := tokenRepo.active("REG"); got != 1 {
		t.Errorf("active sessions after rotation = %d, want 1", got)
	}

	// The spent token must not mint another session.
	if _, err := svc.Refresh(context.Background(), first.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("replayed token err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	if _, err := svc.Refresh(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshRejectsUnstoredToken(t *testing.T) {
	svc, _, cfg := newTestAuth(t)

	// Well-formed and correctly signed, but never issued by Login.
	forged, err := jwt.GenerateRefreshToken("REG", "forged-id", cfg.JWT.RefreshSecret, cfg.JWT.RefreshTokenDays)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Refresh(context.Background(), forged); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, tokenRepo, _ := newTestAuth(t)

	out, err := svc.Login(context.Background(), "REG", "Pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := svc.Logout(context.Background(), out.RefreshToken); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if got := tokenRepo.active("REG"); got != 0 {
		t.Errorf("active sessions after logout = %d, want 0", got)
	}
	if _, err := svc.Refresh(context.Background(), out.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("refresh after logout err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	svc, tokenRepo, _ := newTestAuth(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(context.Background(), "REG", "Pass"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
	}
	if err := svc.LogoutAll(context.Background(), "REG"); err != nil {
		t.Fatalf("LogoutAll failed: %v", err)
	}
	if got := tokenRepo.active("REG"); got != 0 {
		t.Errorf("active sessions = %d, want 0", got)
	}
}
