package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/dmitrijs2005/clientportal/internal/server/config"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/repomanager"
)

// OnboardingStatus is the server-side answer to "has this identity
// finished onboarding". CompanyID is empty while Completed is false.
type OnboardingStatus struct {
	Completed bool
	CompanyID string
}

// OnboardingService resolves and records onboarding completion. Completion
// is defined by the existence of a company row for the identity; there is
// no separate flag to drift out of sync.
type OnboardingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOnboardingService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *OnboardingService {
	return &OnboardingService{db: db, repomanager: m}
}

// Status reports whether the identity has completed onboarding.
func (s *OnboardingService) Status(ctx context.Context, identityID string) (*OnboardingStatus, error) {
	repo := s.repomanager.Companies(s.db)
	company, err := repo.GetByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &OnboardingStatus{Completed: false}, nil
		}
		return nil, common.ErrorInternal
	}
	return &OnboardingStatus{Completed: true, CompanyID: company.ID}, nil
}

// Complete records the identity's company and thereby marks onboarding done.
// A repeated completion yields ErrorAlreadyOnboarded.
func (s *OnboardingService) Complete(ctx context.Context, identityID string, name, vatID, address string) (*models.Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Companies(s.db)
	company, err := repo.Create(ctx, &models.Company{
		IdentityID: identityID,
		Name:       strings.TrimSpace(name),
		VatID:      strings.TrimSpace(vatID),
		Address:    strings.TrimSpace(address),
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyOnboarded
		}
		return nil, common.ErrorInternal
	}
	return company, nil
}
