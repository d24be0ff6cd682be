package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gu-notepro/internal/adapters/persistence/models"
	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/config"
	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/pkg/jwt"
	"gu-notepro/internal/pkg/password"
)

// AuthService authenticates staff against the directory
type AuthService struct {
	staffRepo        repositories.StaffRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(staffRepo repositories.StaffRepository, refreshTokenRepo repositories.RefreshTokenRepository, cfg *config.Config) *AuthService {
	return &AuthService{staffRepo: staffRepo, refreshTokenRepo: refreshTokenRepo, cfg: cfg}
}

// LoginOutput carries the issued token pair and the authenticated staff record
type LoginOutput struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Staff        *domain.Staff `json:"staff"`
}

// Login verifies a staff credential and issues a token pair. Staff
// ids are uppercase-normalized before lookup.
func (s *AuthService) Login(ctx context.Context, staffID, credential string) (*LoginOutput, error) {
	staffID = strings.ToUpper(strings.TrimSpace(staffID))
	if staffID == "" || credential == "" {
		return nil, domain.ErrValidation
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		// Do not leak whether the id exists.
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(credential, staff.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.generateTokens(staff)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, staff.ID, refreshToken); err != nil {
		return nil, err
	}

	out := *staff
	out.Password = ""
	return &LoginOutput{AccessToken: accessToken, RefreshToken: refreshToken, Staff: &out}, nil
}

// Refresh rotates a refresh token and issues a new token pair. The
// presented token is revoked before the new one is stored, so a
// replayed token can never mint a second session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	tokenHash := password.HashToken(refreshToken)

	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if stored.IsRevoked() {
		return nil, domain.ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	staff, err := s.staffRepo.GetByID(ctx, claims.StaffID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	// Token rotation
	if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, err := s.generateTokens(staff)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, staff.ID, newRefreshToken); err != nil {
		return nil, err
	}

	out := *staff
	out.Password = ""
	return &LoginOutput{AccessToken: accessToken, RefreshToken: newRefreshToken, Staff: &out}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	tokenHash := password.HashToken(refreshToken)
	if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash); err != nil {
		return err
	}
	log.Printf("✅ Staff logged out")
	return nil
}

// LogoutAll revokes all refresh tokens for a staff member
func (s *AuthService) LogoutAll(ctx context.Context, staffID string) error {
	if err := s.refreshTokenRepo.RevokeAllByStaffID(ctx, staffID); err != nil {
		return err
	}
	log.Printf("✅ All sessions revoked for staff: %s", staffID)
	return nil
}

// generateTokens generates an access and refresh token pair
func (s *AuthService) generateTokens(staff *domain.Staff) (string, string, error) {
	accessToken, err := jwt.GenerateAccessToken(
		staff.ID, staff.Name, staff.Department, staff.Designation, string(staff.Role),
		s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		staff.ID, uuid.New().String(),
		s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// storeRefreshToken stores the hash of a refresh token
func (s *AuthService) storeRefreshToken(ctx context.Context, staffID, refreshToken string) error {
	token := &models.RefreshToken{
		StaffID:   staffID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	return s.refreshTokenRepo.Create(ctx, token)
}
