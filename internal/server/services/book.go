package services

import (
	"context"
	"database/sql"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/server/models"
	"github.com/mkravets/bookshelf/internal/server/repositories/repomanager"
)

const (
	bookTitleMinLen = 3
	bookTitleMaxLen = 20
)

// BookService provides CRUD over books. Callers are expected to have been
// authorized by the transport layer already; the service itself only
// enforces input validation and persistence rules.
type BookService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewBookService constructs a BookService over the given repositories.
func NewBookService(db *sql.DB, m repomanager.RepositoryManager) *BookService {
	return &BookService{db: db, repomanager: m}
}

// validateTitle enforces the title rules: 3-20 characters, no digits.
func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < bookTitleMinLen || n > bookTitleMaxLen {
		return fmt.Errorf("%w: title must be %d-%d characters", common.ErrValidation, bookTitleMinLen, bookTitleMaxLen)
	}
	for _, r := range title {
		if unicode.IsDigit(r) {
			return fmt.Errorf("%w: title must not contain digits", common.ErrValidation)
		}
	}
	return nil
}

// List returns all books.
func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	return s.repomanager.Books(s.db).List(ctx)
}

// Get returns one book or common.ErrNotFound.
func (s *BookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	return s.repomanager.Books(s.db).Get(ctx, id)
}

// Create validates the title and persists a new book. A duplicate title
// yields common.ErrAlreadyExists.
func (s *BookService) Create(ctx context.Context, title string) (*models.Book, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return s.repomanager.Books(s.db).Create(ctx, &models.Book{Title: title})
}

// Update validates the title and replaces the stored one. Missing ids yield
// common.ErrNotFound.
func (s *BookService) Update(ctx context.Context, id int64, title string) (*models.Book, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	book := &models.Book{ID: id, Title: title}
	if err := s.repomanager.Books(s.db).Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete removes a book; a missing id yields common.ErrNotFound.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Books(s.db).Delete(ctx, id)
}
