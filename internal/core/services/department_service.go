package services

import (
	"context"
	"strings"

	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/core/domain"
)

// DepartmentService manages the organisational unit list
type DepartmentService struct {
	deptRepo  repositories.DepartmentRepository
	staffRepo repositories.StaffRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(deptRepo repositories.DepartmentRepository, staffRepo repositories.StaffRepository) *DepartmentService {
	return &DepartmentService{deptRepo: deptRepo, staffRepo: staffRepo}
}

// List returns all department names, sorted
func (s *DepartmentService) List(ctx context.Context) ([]string, error) {
	return s.deptRepo.GetAll(ctx)
}

// Add registers a new department name
func (s *DepartmentService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrValidation
	}
	return s.deptRepo.Put(ctx, name)
}

// Delete removes a department. Deletion is refused while staff records
// still reference the unit, so historical directory data stays coherent.
func (s *DepartmentService) Delete(ctx context.Context, name string) error {
	count, err := s.staffRepo.CountByDepartment(ctx, name)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDepartmentInUse
	}
	return s.deptRepo.Delete(ctx, name)
}
