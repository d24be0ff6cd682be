package services

import (
	"context"
	"errors"
	"testing"

	"gu-notepro/internal/core/domain"
)

func TestUpdateLogoRequiresDataURL(t *testing.T) {
	svc := NewSettingsService(newMemSettingsRepo())
	if _, err := svc.UpdateLogo(context.Background(), "http://example.com/logo.png"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestUpdateLogoStoresAndClears(t *testing.T) {
	repo := newMemSettingsRepo()
	svc := NewSettingsService(repo)

	updated, err := svc.UpdateLogo(context.Background(), "data:image/png;base64,abc")
	if err != nil {
		t.Fatalf("UpdateLogo failed: %v", err)
	}
	if updated.Logo != "data:image/png;base64,abc" {
		t.Errorf("logo = %q", updated.Logo)
	}
	if updated.UniversityName != domain.UniversityName {
		t.Errorf("universityName = %q", updated.UniversityName)
	}

	cleared, err := svc.UpdateLogo(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cleared.Logo != "" {
		t.Errorf("logo = %q after clear", cleared.Logo)
	}
}
