// Package store persists accounts.
//
// [NewAccountRepository] selects the backend from [config.Storage]: an
// in-memory map, PostgreSQL through the pgx driver or SQLite. SQL backends
// run the embedded goose migrations when they connect.
package store
