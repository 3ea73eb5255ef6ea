package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/clientportal/internal/dbx"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/companies"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/files"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/identities"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/messages"
	"github.com/dmitrijs2005/clientportal/internal/server/repositories/refreshtokens"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Identities(db dbx.DBTX) identities.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Companies(db dbx.DBTX) companies.Repository
	Messages(db dbx.DBTX) messages.Repository
	Files(db dbx.DBTX) files.Repository
}
