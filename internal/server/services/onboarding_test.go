package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/dmitrijs2005/clientportal/internal/server/config"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
)

func TestStatus_NotOnboarded(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{c: &fakeCompaniesRepo{getErr: common.ErrorNotFound}}
	s := NewOnboardingService(db, rm, &config.Config{})

	st, err := s.Status(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	if st.Completed || st.CompanyID != "" {
		t.Fatalf("expected incomplete status, got %+v", st)
	}
}

func TestStatus_Onboarded(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{c: &fakeCompaniesRepo{getOut: &models.Company{ID: "c-1", IdentityID: "id-1"}}}
	s := NewOnboardingService(db, rm, &config.Config{})

	st, err := s.Status(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	if !st.Completed || st.CompanyID != "c-1" {
		t.Fatalf("expected completed status, got %+v", st)
	}
}

func TestStatus_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{c: &fakeCompaniesRepo{getErr: errBoom{}}}
	s := NewOnboardingService(db, rm, &config.Config{})

	if _, err := s.Status(context.Background(), "id-1"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestComplete_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeCompaniesRepo{}
	rm := &fakeRepoManager{c: repo}
	s := NewOnboardingService(db, rm, &config.Config{})

	company, err := s.Complete(context.Background(), "id-1", "  Acme GmbH  ", "DE123", "Berlin")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if company.Name != "Acme GmbH" {
		t.Fatalf("expected trimmed name, got %q", company.Name)
	}
	if company.IdentityID != "id-1" {
		t.Fatalf("unexpected company: %+v", company)
	}
}

func TestComplete_EmptyName(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{c: &fakeCompaniesRepo{}}
	s := NewOnboardingService(db, rm, &config.Config{})

	if _, err := s.Complete(context.Background(), "id-1", "   ", "", ""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestComplete_Repeated(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{c: &fakeCompaniesRepo{createErr: common.ErrorAlreadyExists}}
	s := NewOnboardingService(db, rm, &config.Config{})

	_, err := s.Complete(context.Background(), "id-1", "Acme GmbH", "", "")
	if !errors.Is(err, common.ErrorAlreadyOnboarded) {
		t.Fatalf("want ErrorAlreadyOnboarded, got %v", err)
	}
}
