package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/migrations"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/bankaccounts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/outbox"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/pins"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/users"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/verificationtokens"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	*dbx.SQLTransactor
	db *sql.DB
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) VerificationTokens(db dbx.DBTX) verificationtokens.Repository {
	return verificationtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Pins(db dbx.DBTX) pins.Repository {
	return pins.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) LoginAttempts(db dbx.DBTX) loginattempts.Repository {
	return loginattempts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Outbox(db dbx.DBTX) outbox.Repository {
	return outbox.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) BankAccounts(db dbx.DBTX) bankaccounts.Repository {
	return bankaccounts.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
// Transactions run at read committed, which the row-level PIN and refresh
// token updates rely on.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{
		SQLTransactor: dbx.NewReadCommittedTransactor(db),
		db:            db,
	}, nil
}
