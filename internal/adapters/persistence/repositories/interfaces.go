package repositories

import (
	"context"

	"gu-notepro/internal/adapters/persistence/models"
	"gu-notepro/internal/core/domain"
)

// StaffRepository defines staff directory access
type StaffRepository interface {
	GetAll(ctx context.Context) ([]*domain.Staff, error)
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	Put(ctx context.Context, staff *domain.Staff) error
	Delete(ctx context.Context, id string) error
	CountByDepartment(ctx context.Context, department string) (int64, error)
}

// NoteRepository defines note sheet access. Put upserts the full
// denormalized document; there is no partial update.
type NoteRepository interface {
	GetAll(ctx context.Context) ([]*domain.NoteSheet, error)
	GetByID(ctx context.Context, id string) (*domain.NoteSheet, error)
	Put(ctx context.Context, note *domain.NoteSheet) error
	Delete(ctx context.Context, id string) error
}

// DepartmentRepository defines department list access (name-keyed)
type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]string, error)
	Put(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	ReplaceAll(ctx context.Context, names []string) error
}

// SettingsRepository defines access to the single settings record
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Put(ctx context.Context, settings *domain.Settings) error
}

// RefreshTokenRepository defines refresh token persistence. Lookups only
// return tokens that have not been revoked.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByStaffID(ctx context.Context, staffID string) error
	DeleteExpired(ctx context.Context) error
}

// SequenceRepository issues monotonic reference number suffixes,
// one counter per department code per year.
type SequenceRepository interface {
	Next(ctx context.Context, deptCode string, year int) (int, error)
}
