package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/core/domain"
)

// BackupVersion tags exported packages
const BackupVersion = "1.4.0"

// BackupStaff is the wire form of a staff record inside a backup.
// Credential hashes travel with the backup so a restore is a full
// replacement, not a re-onboarding.
type BackupStaff struct {
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

// BackupNote is the wire form of a note sheet inside a backup
type BackupNote struct {
	ID             string                 `json:"id"`
	Subject        string                 `json:"subject"`
	Content        string                 `json:"content"`
	ReferenceNo    string                 `json:"referenceNo"`
	DateInitiated  time.Time              `json:"dateInitiated"`
	Status         string                 `json:"status"`
	Creator        domain.StaffSnapshot   `json:"creator"`
	CurrentHandler domain.StaffSnapshot   `json:"currentHandler"`
	History        []domain.WorkflowEntry `json:"history"`
	Attachments    []domain.Attachment    `json:"attachments,omitempty"`
}

// BackupPackage is the export/import document
type BackupPackage struct {
	Version     string        `json:"version"`
	ExportDate  time.Time     `json:"exportDate"`
	University  string        `json:"university"`
	Engine      string        `json:"engine"`
	Staff       []BackupStaff `json:"staff"`
	Notes       []BackupNote  `json:"notes"`
	Departments []string      `json:"departments"`
	Logo        string        `json:"logo,omitempty"`
}

// backupProbe checks which collections a candidate package carries
type backupProbe struct {
	Staff       *[]BackupStaff `json:"staff"`
	Notes       *[]BackupNote  `json:"notes"`
	Departments *[]string      `json:"departments"`
	Logo        string         `json:"logo"`
}

// TransferService exports and restores the full registry
type TransferService struct {
	staffRepo    repositories.StaffRepository
	noteRepo     repositories.NoteRepository
	deptRepo     repositories.DepartmentRepository
	settingsRepo repositories.SettingsRepository
	now          func() time.Time
}

// NewTransferService creates a new transfer service
func NewTransferService(
	staffRepo repositories.StaffRepository,
	noteRepo repositories.NoteRepository,
	deptRepo repositories.DepartmentRepository,
	settingsRepo repositories.SettingsRepository,
) *TransferService {
	return &TransferService{
		staffRepo:    staffRepo,
		noteRepo:     noteRepo,
		deptRepo:     deptRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// Export assembles the full registry backup
func (s *TransferService) Export(ctx context.Context) (*BackupPackage, error) {
	staff, err := s.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.deptRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	pkg := &BackupPackage{
		Version:     BackupVersion,
		ExportDate:  s.now(),
		University:  domain.UniversityName,
		Engine:      "MySQL Registry Store",
		Staff:       make([]BackupStaff, 0, len(staff)),
		Notes:       make([]BackupNote, 0, len(notes)),
		Departments: departments,
		Logo:        settings.Logo,
	}
	for _, member := range staff {
		pkg.Staff = append(pkg.Staff, backupStaffFromDomain(member))
	}
	for _, note := range notes {
		pkg.Notes = append(pkg.Notes, backupNoteFromDomain(note))
	}
	return pkg, nil
}

// Import restores a backup, overwriting the current registry. Malformed
// JSON fails with a parse error; a package missing any of the staff,
// notes or departments collections fails with ErrInvalidBackup. Restore
// is destructive, not a merge.
func (s *TransferService) Import(ctx context.Context, raw []byte) error {
	var probe backupProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("parse backup package: %w", err)
	}
	if probe.Staff == nil || probe.Notes == nil || probe.Departments == nil {
		return domain.ErrInvalidBackup
	}

	for _, member := range *probe.Staff {
		if err := s.staffRepo.Put(ctx, backupStaffToDomain(member)); err != nil {
			return err
		}
	}
	for _, note := range *probe.Notes {
		if err := s.noteRepo.Put(ctx, backupNoteToDomain(note)); err != nil {
			return err
		}
	}
	if err := s.deptRepo.ReplaceAll(ctx, *probe.Departments); err != nil {
		return err
	}

	if probe.Logo != "" {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}
		settings.Logo = probe.Logo
		if err := s.settingsRepo.Put(ctx, settings); err != nil {
			return err
		}
	}
	return nil
}

func backupStaffFromDomain(s *domain.Staff) BackupStaff {
	return BackupStaff{
		ID:          s.ID,
		Name:        s.Name,
		Designation: s.Designation,
		Department:  s.Department,
		Role:        string(s.Role),
		Password:    s.Password,
		Email:       s.Email,
		Phone:       s.Phone,
		Photo:       s.Photo,
	}
}

func backupStaffToDomain(s BackupStaff) *domain.Staff {
	return &domain.Staff{
		ID:          s.ID,
		Name:        s.Name,
		Designation: s.Designation,
		Department:  s.Department,
		Role:        domain.Role(s.Role),
		Password:    s.Password,
		Email:       s.Email,
		Phone:       s.Phone,
		Photo:       s.Photo,
	}
}

func backupNoteFromDomain(n *domain.NoteSheet) BackupNote {
	return BackupNote{
		ID:             n.ID,
		Subject:        n.Subject,
		Content:        n.Content,
		ReferenceNo:    n.ReferenceNo,
		DateInitiated:  n.DateInitiated,
		Status:         string(n.Status),
		Creator:        n.Creator,
		CurrentHandler: n.CurrentHandler,
		History:        n.History,
		Attachments:    n.Attachments,
	}
}

func backupNoteToDomain(n BackupNote) *domain.NoteSheet {
	return &domain.NoteSheet{
		ID:             n.ID,
		Subject:        n.Subject,
		Content:        n.Content,
		ReferenceNo:    n.ReferenceNo,
		DateInitiated:  n.DateInitiated,
		Status:         domain.NoteStatus(n.Status),
		Creator:        n.Creator,
		CurrentHandler: n.CurrentHandler,
		History:        n.History,
		Attachments:    n.Attachments,
	}
}
