package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkravets/bookshelf/internal/dbx"
	"github.com/mkravets/bookshelf/internal/server/repositories/books"
	"github.com/mkravets/bookshelf/internal/server/repositories/categories"
	"github.com/mkravets/bookshelf/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Books(db dbx.DBTX) books.Repository
	Categories(db dbx.DBTX) categories.Repository
}
