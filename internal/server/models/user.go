// Package models defines the persisted server-side row types.
package models

import "time"

// User is an identity record. PasswordHash always holds a bcrypt hash,
// never the plaintext.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
