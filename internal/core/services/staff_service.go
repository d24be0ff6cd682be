package services

import (
	"context"
	"errors"
	"strings"

	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/pkg/password"
)

// StaffService manages the official directory (admin surface)
type StaffService struct {
	staffRepo repositories.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repositories.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// StaffInput represents create/update staff input
type StaffInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Role        string `json:"role"`
	Password    string `json:"password,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

func (in *StaffInput) normalize() {
	in.ID = strings.ToUpper(strings.TrimSpace(in.ID))
	in.Name = strings.TrimSpace(in.Name)
	if in.Role == "" {
		in.Role = string(domain.RoleStaff)
	}
}

// List returns the directory without credential hashes
func (s *StaffService) List(ctx context.Context) ([]*domain.Staff, error) {
	staff, err := s.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, member := range staff {
		member.Password = ""
	}
	return staff, nil
}

// Get returns a single staff record without the credential hash
func (s *StaffService) Get(ctx context.Context, id string) (*domain.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, strings.ToUpper(id))
	if err != nil {
		return nil, err
	}
	staff.Password = ""
	return staff, nil
}

// Create registers a new staff member
func (s *StaffService) Create(ctx context.Context, input *StaffInput) (*domain.Staff, error) {
	input.normalize()
	if input.ID == "" || input.Name == "" || input.Password == "" {
		return nil, domain.ErrValidation
	}

	if _, err := s.staffRepo.GetByID(ctx, input.ID); err == nil {
		return nil, domain.ErrStaffAlreadyExists
	} else if !errors.Is(err, domain.ErrStaffNotFound) {
		return nil, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	staff := &domain.Staff{
		ID:          input.ID,
		Name:        input.Name,
		Designation: input.Designation,
		Department:  input.Department,
		Role:        domain.Role(input.Role),
		Password:    hash,
		Email:       input.Email,
		Phone:       input.Phone,
		Photo:       input.Photo,
	}
	if err := s.staffRepo.Put(ctx, staff); err != nil {
		return nil, err
	}

	out := *staff
	out.Password = ""
	return &out, nil
}

// Update edits an existing staff record. An empty password keeps the
// stored hash; a non-empty one is re-hashed. Directory edits do not
// rewrite snapshots already embedded in note history.
func (s *StaffService) Update(ctx context.Context, input *StaffInput) (*domain.Staff, error) {
	input.normalize()
	if input.ID == "" || input.Name == "" {
		return nil, domain.ErrValidation
	}

	existing, err := s.staffRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	hash := existing.Password
	if input.Password != "" {
		if hash, err = password.Hash(input.Password); err != nil {
			return nil, err
		}
	}

	staff := &domain.Staff{
		ID:          input.ID,
		Name:        input.Name,
		Designation: input.Designation,
		Department:  input.Department,
		Role:        domain.Role(input.Role),
		Password:    hash,
		Email:       input.Email,
		Phone:       input.Phone,
		Photo:       input.Photo,
	}
	if err := s.staffRepo.Put(ctx, staff); err != nil {
		return nil, err
	}

	out := *staff
	out.Password = ""
	return &out, nil
}

// Delete removes a staff record. Self-deletion is refused.
func (s *StaffService) Delete(ctx context.Context, actorID, id string) error {
	id = strings.ToUpper(id)
	if id == actorID {
		return domain.ErrSelfDelete
	}
	if _, err := s.staffRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}
