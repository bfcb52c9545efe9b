package models

import "time"

// Category is an auxiliary grouping entity. CreatedAt is assigned by the
// store on insertion.
type Category struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"timestamp"`
}
