package categories

import (
	"context"

	"github.com/mkravets/bookshelf/internal/server/models"
)

type Repository interface {
	// List returns all categories ordered by id.
	List(ctx context.Context) ([]*models.Category, error)

	// Get returns common.ErrNotFound when no category has the given id.
	Get(ctx context.Context, id int64) (*models.Category, error)

	// Create inserts the category and returns it with its store-assigned id
	// and timestamp. A name collision yields common.ErrAlreadyExists.
	Create(ctx context.Context, category *models.Category) (*models.Category, error)

	// Delete removes a category; a missing id yields common.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
