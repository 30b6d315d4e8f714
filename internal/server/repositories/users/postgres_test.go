package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(first_name,\s*last_name,\s*middle_name,\s*email,\s*password_hash,\s*is_verified\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`

var userCols = []string{"id", "first_name", "last_name", "middle_name", "email", "password_hash", "is_verified", "created_at", "updated_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(insertQ).
		WithArgs("Ada", "Obi", "", "a@x.com", "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("42", now, now))

	u := &models.User{FirstName: "Ada", LastName: "Obi", Email: "A@x.com", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || got.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs("Ada", "Obi", "", "a@x.com", "hash", false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{FirstName: "Ada", LastName: "Obi", Email: "a@x.com", PasswordHash: "hash"})
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+lower\(email\)\s*=\s*lower\(\$1\)\s*$`
	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "Ada", "Obi", "", "a@x.com", "hash", true, now, now))

	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || !got.IsVerified || got.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestMarkVerified(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+is_verified\s*=\s*TRUE.*WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkVerified(context.Background(), "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.MarkVerified(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdatePassword_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$2`
	mock.ExpectExec(q).WithArgs("u-1", "new").WillReturnError(errors.New("db err"))

	err := repo.UpdatePassword(context.Background(), "u-1", "new")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if !errors.Is(err, common.ErrTransientDependency) || !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected transient internal error, got %v", err)
	}
}
