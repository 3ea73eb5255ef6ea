// Package companies declares the repository contract for onboarding
// company records. Presence of a company row for an identity is the
// authoritative signal that onboarding is complete.
package companies

import (
	"context"

	"github.com/dmitrijs2005/clientportal/internal/server/models"
)

type Repository interface {
	// Create stores the company for its identity. A second company for the
	// same identity yields ErrorAlreadyExists.
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// GetByIdentityID returns the identity's company, or ErrorNotFound when
	// onboarding has not been completed.
	GetByIdentityID(ctx context.Context, identityID string) (*models.Company, error)
}
