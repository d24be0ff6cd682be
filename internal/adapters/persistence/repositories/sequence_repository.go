package repositories

import (
	"context"
	"errors"

	"gu-notepro/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSequenceRepository issues reference number suffixes from a
// persisted per-department-per-year counter.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next increments and returns the counter for the given department code
// and year. The first suffix issued for a fresh counter is 1000, keeping
// reference numbers at four digits.
func (r *GormSequenceRepository) Next(ctx context.Context, deptCode string, year int) (int, error) {
	var issued int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq models.RefSequence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&seq, "dept_code = ? AND year = ?", deptCode, year).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seq = models.RefSequence{DeptCode: deptCode, Year: year, LastNo: 999}
		} else if err != nil {
			return err
		}
		seq.LastNo++
		issued = seq.LastNo
		return tx.Save(&seq).Error
	})
	return issued, err
}
