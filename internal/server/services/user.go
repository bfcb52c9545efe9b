// Package services contains server-side business logic. This file implements
// UserService, which handles signup, credential verification with token
// issuance, and per-request authorization.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/dbx"
	"github.com/mkravets/bookshelf/internal/server/auth"
	"github.com/mkravets/bookshelf/internal/server/models"
	"github.com/mkravets/bookshelf/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with hashed passwords
// - Login: verify credentials and mint a session token
// - Authorize: resolve a presented token back to a current user
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      *auth.TokenIssuer
}

// NewUserService constructs a UserService from its injected collaborators.
// The token issuer already carries the signing secret and lifetime from the
// server config; nothing here reads ambient state.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, tokens *auth.TokenIssuer) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register creates a new user with the given username, email, and password.
// The existence pre-check and the insert share one transaction, but the
// pre-check is a fast path for a friendly error only; the store's uniqueness
// constraints are the authoritative guard, so a race between two identical
// signups still ends with exactly one winner.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}

	// Hashing is CPU-bound; keep it outside the transaction.
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}

	var created *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		usernameTaken, emailTaken, err := repo.Taken(ctx, username, email)
		if err != nil {
			return fmt.Errorf("error checking existing users: %w", err)
		}
		if usernameTaken {
			return fmt.Errorf("%w: username already registered", common.ErrAlreadyExists)
		}
		if emailTaken {
			return fmt.Errorf("%w: email already registered", common.ErrAlreadyExists)
		}

		u, err := repo.Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				return fmt.Errorf("%w: username or email already registered", common.ErrAlreadyExists)
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		created = u
		return nil
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the provided password against the stored hash and, on
// success, returns a signed session token together with the user. Unknown
// usernames and wrong passwords are distinct sentinels here; the transport
// layer collapses both into one unauthorized response.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUserNotFound
		}
		return "", nil, common.ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, common.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", nil, common.ErrInternal
	}
	return token, user, nil
}

// Authorize decodes the token and re-resolves its subject to a current user
// record. A subject that no longer exists fails with ErrUserNotFound, so a
// token outlives its user by exactly nothing.
func (s *UserService) Authorize(ctx context.Context, token string) (*models.User, error) {
	subject, err := s.tokens.Subject(token)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}
