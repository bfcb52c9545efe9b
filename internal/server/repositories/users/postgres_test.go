package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users .* RETURNING id, created_at`).
		WithArgs("alice", "alice@example.com", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	u, err := repo.Create(context.Background(), &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("want id 7, got %d", u.ID)
	}
	if !u.CreatedAt.Equal(created) {
		t.Fatalf("want created_at %v, got %v", created, u.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_UniqueViolationIsAlreadyExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"}
	mock.ExpectQuery(`INSERT INTO users .* RETURNING id, created_at`).
		WithArgs("alice", "alice@example.com", "h").
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), &models.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "h",
	})
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users .* RETURNING id, created_at`).
		WithArgs("alice", "alice@example.com", "h").
		WillReturnError(errors.New("db is down"))

	_, err := repo.Create(context.Background(), &models.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "h",
	})
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(int64(3), "bob", "bob@example.com", "$2a$10$hash", created)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at FROM users`).
		WithArgs("bob").
		WillReturnRows(rows)

	u, err := repo.GetByUsername(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 3 || u.Username != "bob" || u.Email != "bob@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at FROM users`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTaken_ReportsBothFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+EXISTS.*EXISTS`).
		WithArgs("alice", "new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"u", "e"}).AddRow(true, false))

	usernameTaken, emailTaken, err := repo.Taken(context.Background(), "alice", "new@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !usernameTaken || emailTaken {
		t.Fatalf("want (true,false), got (%v,%v)", usernameTaken, emailTaken)
	}
}
