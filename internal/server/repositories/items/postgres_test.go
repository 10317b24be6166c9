package items

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akondrashov/stash/internal/common"
	"github.com/akondrashov/stash/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func itemColumns() []string {
	return []string{"id", "owner_id", "name", "description", "created_at", "updated_at"}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+items\s*\(owner_id,\s*name,\s*description\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("i-1", now, now)
	mock.ExpectQuery(q).
		WithArgs("u-1", "keys", "front door").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.Item{
		OwnerID: "u-1", Name: "keys", Description: "front door",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "i-1" || got.OwnerID != "u-1" {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*FROM\s+items\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*FROM\s+items\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(itemColumns()).
		AddRow("i-2", "u-1", "later", "", now, now).
		AddRow("i-1", "u-2", "earlier", "", now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "i-2" || got[1].ID != "i-1" {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+items\s+SET\s+name\s*=\s*COALESCE\(\$2,\s*name\),\s*description\s*=\s*COALESCE\(\$3,\s*description\),\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+.*$`

	now := time.Now()
	name := "renamed"
	rows := sqlmock.NewRows(itemColumns()).
		AddRow("i-1", "u-1", "renamed", "untouched", now.Add(-time.Hour), now)
	mock.ExpectQuery(q).
		WithArgs("i-1", "renamed", nil).
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(), "i-1", &models.ItemUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "renamed" || got.Description != "untouched" {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+items\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs("i-1").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "i-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(q).WithArgs("i-2").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Delete(context.Background(), "i-2")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*FROM\s+items\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
