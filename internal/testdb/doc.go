// Package testdb gives integration tests a migrated PostgreSQL connection and
// a transaction that is always rolled back. Tests that call GetTestDBWithT are
// skipped unless DATABASE_URL is set.
package testdb
