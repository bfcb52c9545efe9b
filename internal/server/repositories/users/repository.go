package users

import (
	"context"

	"github.com/mkravets/bookshelf/internal/server/models"
)

type Repository interface {
	// Create inserts the user and returns it with its store-assigned id.
	// A username or email collision yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns common.ErrNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Taken reports whether the username or the email is already in use.
	// This is the friendly pre-check only; Create's constraint handling is
	// the authoritative duplicate guard.
	Taken(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error)
}
