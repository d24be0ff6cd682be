package repositories

import (
	"context"
	"errors"

	"gu-notepro/internal/adapters/persistence/models"
	"gu-notepro/internal/core/domain"

	"gorm.io/gorm"
)

// GormStaffRepository handles staff directory data access
type GormStaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// GetAll lists the full directory ordered by name
func (r *GormStaffRepository) GetAll(ctx context.Context) ([]*domain.Staff, error) {
	var rows []*models.Staff
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	staff := make([]*domain.Staff, 0, len(rows))
	for _, row := range rows {
		staff = append(staff, row.ToDomain())
	}
	return staff, nil
}

// GetByID gets a staff record by id
func (r *GormStaffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	var row models.Staff
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Put upserts a staff record
func (r *GormStaffRepository) Put(ctx context.Context, staff *domain.Staff) error {
	return r.db.WithContext(ctx).Save(models.StaffFromDomain(staff)).Error
}

// Delete removes a staff record
func (r *GormStaffRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Staff{}, "id = ?", id).Error
}

// CountByDepartment counts staff assigned to a department
func (r *GormStaffRepository) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Staff{}).
		Where("department = ?", department).
		Count(&count).Error
	return count, err
}
