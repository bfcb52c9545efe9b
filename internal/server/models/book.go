package models

// Book is the CRUD-managed catalog entity. Title is length-bounded and must
// not contain digit characters; the services layer enforces that before
// persistence.
type Book struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}
