package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is a one-way, salted hash and verify operation over
// plaintext passwords.
type PasswordHasher interface {
	// Hash produces a salted hash of the password. Hashing the same
	// password twice yields different stored values.
	Hash(password string) (string, error)

	// Verify reports whether password was the input used to produce hash.
	// A malformed or unsupported hash counts as a mismatch, not an error.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify runs bcrypt's own constant-time comparison. Errors from corrupted
// or foreign hash formats surface as a plain mismatch.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
