// Package store is a thin typed query façade over the users and plans
// collections. It performs no retries; errors are surfaced to the handlers
// as-is.
package store

import "database/sql"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
