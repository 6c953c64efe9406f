// Package migrations embeds the goose SQL migrations so the binary can
// migrate a database without the source tree on disk.
package migrations

import "embed"

// TableName is the goose version table.
const TableName = "schema_migrations"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
