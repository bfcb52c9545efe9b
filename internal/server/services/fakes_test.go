package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mkravets/bookshelf/internal/dbx"
	"github.com/mkravets/bookshelf/internal/server/models"
	booksrepo "github.com/mkravets/bookshelf/internal/server/repositories/books"
	categoriesrepo "github.com/mkravets/bookshelf/internal/server/repositories/categories"
	usersrepo "github.com/mkravets/bookshelf/internal/server/repositories/users"
)

// --- shared helpers ---

func newSQLMockDB(t *testing.T) *sql.DB {
	db, _ := newTxMockDB(t)
	return db
}

// newTxMockDB additionally returns the mock so tests can expect transaction
// boundaries (Begin/Commit/Rollback).
func newTxMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// --- fakes ---

type fakeUsersRepo struct {
	createErr error

	getOut *models.User
	getErr error

	usernameTaken bool
	emailTaken    bool
	takenErr      error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Taken(ctx context.Context, username, email string) (bool, bool, error) {
	return f.usernameTaken, f.emailTaken, f.takenErr
}

type fakeBooksRepo struct {
	listOut []*models.Book
	listErr error

	getOut *models.Book
	getErr error

	createErr error
	updateErr error
	deleteErr error

	lastCreated *models.Book
	lastUpdated *models.Book
	lastDeleted int64
}

func (f *fakeBooksRepo) List(ctx context.Context) ([]*models.Book, error) {
	return f.listOut, f.listErr
}
func (f *fakeBooksRepo) Get(ctx context.Context, id int64) (*models.Book, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeBooksRepo) Create(ctx context.Context, b *models.Book) (*models.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 1
	f.lastCreated = b
	return b, nil
}
func (f *fakeBooksRepo) Update(ctx context.Context, b *models.Book) error {
	f.lastUpdated = b
	return f.updateErr
}
func (f *fakeBooksRepo) Delete(ctx context.Context, id int64) error {
	f.lastDeleted = id
	return f.deleteErr
}

type fakeCategoriesRepo struct {
	listOut []*models.Category
	listErr error

	getOut *models.Category
	getErr error

	createErr error
	deleteErr error

	lastCreated *models.Category
}

func (f *fakeCategoriesRepo) List(ctx context.Context) ([]*models.Category, error) {
	return f.listOut, f.listErr
}
func (f *fakeCategoriesRepo) Get(ctx context.Context, id int64) (*models.Category, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeCategoriesRepo) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = 1
	f.lastCreated = c
	return c, nil
}
func (f *fakeCategoriesRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBooksRepo
	c *fakeCategoriesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error         { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository               { return m.u }
func (m *fakeRepoManager) Books(db dbx.DBTX) booksrepo.Repository               { return m.b }
func (m *fakeRepoManager) Categories(db dbx.DBTX) categoriesrepo.Repository     { return m.c }
