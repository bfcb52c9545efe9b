// Package migrations embeds the goose SQL scripts applied to the database
// at server startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
