// Package common defines shared constants and sentinel errors used across
// the bookshelf service layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrUserNotFound and ErrBadCredentials stay distinct so
	// the service layer can be tested against both, but the HTTP layer must
	// collapse them into one uniform unauthorized response.
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidToken   = errors.New("invalid token")
)
