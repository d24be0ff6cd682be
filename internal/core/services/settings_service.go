package services

import (
	"context"
	"strings"

	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/core/domain"
)

// SettingsService manages the institution branding record
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the current settings record
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateLogo stores a new logo. An empty string clears it; a non-empty
// value must be a data URL.
func (s *SettingsService) UpdateLogo(ctx context.Context, logo string) (*domain.Settings, error) {
	if logo != "" && !strings.HasPrefix(logo, "data:") {
		return nil, domain.ErrValidation
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.Logo = logo
	if err := s.settingsRepo.Put(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
