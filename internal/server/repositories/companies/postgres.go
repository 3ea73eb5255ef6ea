package companies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/dmitrijs2005/clientportal/internal/dbx"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {

	query :=
		`INSERT INTO companies (identity_id, name, vat_id, address)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		company.IdentityID, company.Name, company.VatID, company.Address).Scan(&company.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return company, nil
}

func (r *PostgresRepository) GetByIdentityID(ctx context.Context, identityID string) (*models.Company, error) {
	query :=
		`SELECT id, identity_id, name, vat_id, address FROM companies
		 WHERE identity_id = $1
		 `

	company := &models.Company{}
	err := r.db.QueryRowContext(ctx, query, identityID).Scan(
		&company.ID, &company.IdentityID, &company.Name, &company.VatID, &company.Address)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return company, nil
}
