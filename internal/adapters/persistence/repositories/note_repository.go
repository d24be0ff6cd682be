package repositories

import (
	"context"
	"errors"

	"gu-notepro/internal/adapters/persistence/models"
	"gu-notepro/internal/core/domain"

	"gorm.io/gorm"
)

// GormNoteRepository handles note sheet data access
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// GetAll lists every note, newest first
func (r *GormNoteRepository) GetAll(ctx context.Context) ([]*domain.NoteSheet, error) {
	var rows []*models.Note
	err := r.db.WithContext(ctx).
		Order("date_initiated DESC, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.NoteSheet, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.ToDomain())
	}
	return notes, nil
}

// GetByID gets a note by id
func (r *GormNoteRepository) GetByID(ctx context.Context, id string) (*domain.NoteSheet, error) {
	var row models.Note
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Put upserts the full denormalized document
func (r *GormNoteRepository) Put(ctx context.Context, note *domain.NoteSheet) error {
	return r.db.WithContext(ctx).Save(models.NoteFromDomain(note)).Error
}

// Delete removes a note
func (r *GormNoteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id).Error
}
