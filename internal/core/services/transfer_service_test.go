package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gu-notepro/internal/core/domain"
)

func newTestTransfer(t *testing.T) (*TransferService, *memStaffRepo, *memNoteRepo, *memDeptRepo, *memSettingsRepo) {
	t.Helper()
	staffRepo := newMemStaffRepo(testRegistrar, testFinance)
	noteRepo := newMemNoteRepo()
	deptRepo := &memDeptRepo{names: []string{"Registrar Office", "Finance Section"}}
	settingsRepo := newMemSettingsRepo()
	svc := NewTransferService(staffRepo, noteRepo, deptRepo, settingsRepo)
	svc.now = func() time.Time { return time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC) }
	return svc, staffRepo, noteRepo, deptRepo, settingsRepo
}

func TestExportPackageShape(t *testing.T) {
	svc, _, noteRepo, _, settingsRepo := newTestTransfer(t)
	settingsRepo.settings.Logo = "data:image/png;base64,xyz"
	note := trayFixture()[0]
	if err := noteRepo.Put(context.Background(), note); err != nil {
		t.Fatal(err)
	}

	pkg, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if pkg.Version != "1.4.0" {
		t.Errorf("version = %q, want 1.4.0", pkg.Version)
	}
	if pkg.University != domain.UniversityName {
		t.Errorf("university = %q", pkg.University)
	}
	if pkg.Engine != "MySQL Registry Store" {
		t.Errorf("engine = %q", pkg.Engine)
	}
	if len(pkg.Staff) != 2 || len(pkg.Notes) != 1 || len(pkg.Departments) != 2 {
		t.Errorf("collections = %d staff, %d notes, %d departments",
			len(pkg.Staff), len(pkg.Notes), len(pkg.Departments))
	}
	if pkg.Logo != "data:image/png;base64,xyz" {
		t.Errorf("logo = %q", pkg.Logo)
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	svc, _, _, _, _ := newTestTransfer(t)
	err := svc.Import(context.Background(), []byte("{not json"))
	if err == nil || errors.Is(err, domain.ErrInvalidBackup) {
		t.Errorf("err = %v, want a parse error distinct from ErrInvalidBackup", err)
	}
}

func TestImportRejectsMissingCollections(t *testing.T) {
	svc, _, _, _, _ := newTestTransfer(t)
	cases := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"no staff", `{"notes":[],"departments":[]}`},
		{"no notes", `{"staff":[],"departments":[]}`},
		{"no departments", `{"staff":[],"notes":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Import(context.Background(), []byte(tc.raw)); !errors.Is(err, domain.ErrInvalidBackup) {
				t.Errorf("err = %v, want ErrInvalidBackup", err)
			}
		})
	}
}

func TestImportRestoresRegistry(t *testing.T) {
	svc, staffRepo, noteRepo, deptRepo, settingsRepo := newTestTransfer(t)

	raw := []byte(`{
		"version": "1.4.0",
		"staff": [
			{"id": "NEW01", "name": "Dr. New Officer", "designation": "Deputy Registrar",
			 "department": "Registrar Office", "role": "STAFF", "password": "$2a$12$hash"}
		],
		"notes": [
			{"id": "NS-restored", "subject": "RESTORED FILE", "content": "From backup.",
			 "referenceNo": "GU/REG/2025/1003", "status": "APPROVED",
			 "creator": {"id": "NEW01", "name": "Dr. New Officer"},
			 "currentHandler": {"id": "NEW01", "name": "Dr. New Officer"},
			 "history": []}
		],
		"departments": ["Registrar Office"],
		"logo": "data:image/png;base64,restored"
	}`)

	if err := svc.Import(context.Background(), raw); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	member, err := staffRepo.GetByID(context.Background(), "NEW01")
	if err != nil {
		t.Fatalf("restored staff missing: %v", err)
	}
	if member.Password != "$2a$12$hash" {
		t.Errorf("credential hash not carried over: %q", member.Password)
	}

	note, err := noteRepo.GetByID(context.Background(), "NS-restored")
	if err != nil {
		t.Fatalf("restored note missing: %v", err)
	}
	if note.Status != domain.StatusApproved {
		t.Errorf("status = %s", note.Status)
	}

	departments, _ := deptRepo.GetAll(context.Background())
	if len(departments) != 1 || departments[0] != "Registrar Office" {
		t.Errorf("departments = %v, restore must replace not merge", departments)
	}

	if settingsRepo.settings.Logo != "data:image/png;base64,restored" {
		t.Errorf("logo = %q", settingsRepo.settings.Logo)
	}
}
