package repositories

import (
	"context"

	"gu-notepro/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GormDepartmentRepository handles department data access
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// GetAll lists department names sorted alphabetically
func (r *GormDepartmentRepository) GetAll(ctx context.Context) ([]string, error) {
	var rows []models.Department
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

// Put adds a department; saving an existing name is a no-op upsert
func (r *GormDepartmentRepository) Put(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Save(&models.Department{Name: name}).Error
}

// Delete removes a department by name
func (r *GormDepartmentRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Delete(&models.Department{}, "name = ?", name).Error
}

// ReplaceAll swaps the full department list (backup restore path)
func (r *GormDepartmentRepository) ReplaceAll(ctx context.Context, names []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Department{}).Error; err != nil {
			return err
		}
		for _, name := range names {
			if err := tx.Save(&models.Department{Name: name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
