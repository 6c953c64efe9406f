// Package postgres implements the store interfaces on top of PostgreSQL via
// the pgx database/sql driver. It also owns the connection pool settings and
// the embedded schema migrations.
package postgres
