package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/bankaccounts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/outbox"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/pins"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/users"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/verificationtokens"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m, err := NewPostgresRepositoryManager(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Conn() != db {
		t.Fatal("Conn() must return the wrapped *sql.DB")
	}
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m, _ := NewPostgresRepositoryManager(db)

	var _ users.Repository = m.Users(db)
	var _ refreshtokens.Repository = m.RefreshTokens(db)
	var _ verificationtokens.Repository = m.VerificationTokens(db)
	var _ pins.Repository = m.Pins(db)
	var _ loginattempts.Repository = m.LoginAttempts(db)
	var _ outbox.Repository = m.Outbox(db)
	var _ bankaccounts.Repository = m.BankAccounts(db)

	if u := m.Users(db); u == nil {
		t.Fatal("Users() nil")
	}
	if p := m.Pins(db); p == nil {
		t.Fatal("Pins() nil")
	}
}

func TestWithTx_CommitsThroughTransactor(t *testing.T) {
	db, mock := newDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM refresh_tokens").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m, _ := NewPostgresRepositoryManager(db)
	err := m.WithTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		_, err := m.RefreshTokens(tx).DeleteByID(ctx, "rt-1")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, got *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if got != db {
			return errors.New("unexpected db")
		}
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m, _ := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m, _ := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestInMemoryManager_SatisfiesInterface(t *testing.T) {
	var m RepositoryManager = NewInMemoryRepositoryManager(nil)

	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if m.Conn() != nil {
		t.Fatal("memory Conn() must be nil")
	}
	if m.Users(nil) == nil || m.Outbox(nil) == nil {
		t.Fatal("nil repository")
	}
}
