package services

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"

	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/server/models"
	"github.com/mkravets/bookshelf/internal/server/repositories/repomanager"
)

const (
	categoryNameMaxLen        = 30
	categoryDescriptionMaxLen = 255
)

// CategoryService provides CRUD over categories behind the same
// authorization gate as books.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCategoryService constructs a CategoryService over the given repositories.
func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

// Get returns one category or common.ErrNotFound.
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.repomanager.Categories(s.db).Get(ctx, id)
}

// Create validates field lengths and persists a new category. A duplicate
// name yields common.ErrAlreadyExists.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if utf8.RuneCountInString(name) > categoryNameMaxLen {
		return nil, fmt.Errorf("%w: name must be at most %d characters", common.ErrValidation, categoryNameMaxLen)
	}
	if utf8.RuneCountInString(description) > categoryDescriptionMaxLen {
		return nil, fmt.Errorf("%w: description must be at most %d characters", common.ErrValidation, categoryDescriptionMaxLen)
	}
	return s.repomanager.Categories(s.db).Create(ctx, &models.Category{Name: name, Description: description})
}

// Delete removes a category; a missing id yields common.ErrNotFound.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Categories(s.db).Delete(ctx, id)
}
