package services

import (
	"context"
	"errors"
	"testing"

	"gu-notepro/internal/core/domain"
)

func TestAddDepartmentTrimsName(t *testing.T) {
	deptRepo := &memDeptRepo{}
	svc := NewDepartmentService(deptRepo, newMemStaffRepo())

	if err := svc.Add(context.Background(), "  Department of Geology  "); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	names, _ := deptRepo.GetAll(context.Background())
	if len(names) != 1 || names[0] != "Department of Geology" {
		t.Errorf("names = %v", names)
	}
}

func TestAddDepartmentEmptyName(t *testing.T) {
	svc := NewDepartmentService(&memDeptRepo{}, newMemStaffRepo())
	if err := svc.Add(context.Background(), "   "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestDeleteDepartmentInUse(t *testing.T) {
	deptRepo := &memDeptRepo{names: []string{"Registrar Office"}}
	svc := NewDepartmentService(deptRepo, newMemStaffRepo(testRegistrar))

	err := svc.Delete(context.Background(), "Registrar Office")
	if !errors.Is(err, domain.ErrDepartmentInUse) {
		t.Errorf("err = %v, want ErrDepartmentInUse", err)
	}
	names, _ := deptRepo.GetAll(context.Background())
	if len(names) != 1 {
		t.Error("refused delete still removed the department")
	}
}

func TestDeleteUnusedDepartment(t *testing.T) {
	deptRepo := &memDeptRepo{names: []string{"Empty Unit"}}
	svc := NewDepartmentService(deptRepo, newMemStaffRepo(testRegistrar))

	if err := svc.Delete(context.Background(), "Empty Unit"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	names, _ := deptRepo.GetAll(context.Background())
	if len(names) != 0 {
		t.Errorf("names = %v", names)
	}
}
