package books

import (
	"context"

	"github.com/mkravets/bookshelf/internal/server/models"
)

type Repository interface {
	// List returns all books ordered by id.
	List(ctx context.Context) ([]*models.Book, error)

	// Get returns common.ErrNotFound when no book has the given id.
	Get(ctx context.Context, id int64) (*models.Book, error)

	// Create inserts the book and returns it with its store-assigned id.
	// A title collision yields common.ErrAlreadyExists.
	Create(ctx context.Context, book *models.Book) (*models.Book, error)

	// Update replaces the title of an existing book. Missing id yields
	// common.ErrNotFound, a title collision common.ErrAlreadyExists.
	Update(ctx context.Context, book *models.Book) error

	// Delete removes a book; a missing id yields common.ErrNotFound rather
	// than a silent no-op.
	Delete(ctx context.Context, id int64) error
}
