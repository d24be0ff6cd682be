package repositories

import (
	"context"
	"errors"

	"gu-notepro/internal/adapters/persistence/models"
	"gu-notepro/internal/core/domain"

	"gorm.io/gorm"
)

// GormSettingsRepository handles the single settings record
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get loads the settings record; a missing row yields defaults
func (r *GormSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var row models.Setting
	err := r.db.WithContext(ctx).First(&row, "id = ?", domain.SettingsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.Settings{ID: domain.SettingsID, UniversityName: domain.UniversityName}, nil
		}
		return nil, err
	}
	return &domain.Settings{ID: row.ID, UniversityName: row.UniversityName, Logo: row.Logo}, nil
}

// Put upserts the settings record
func (r *GormSettingsRepository) Put(ctx context.Context, settings *domain.Settings) error {
	return r.db.WithContext(ctx).Save(&models.Setting{
		ID:             settings.ID,
		UniversityName: settings.UniversityName,
		Logo:           settings.Logo,
	}).Error
}
