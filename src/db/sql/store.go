package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a record is absent or not owned by the
// requesting user. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")

// Store wraps the connection pool with the query methods handlers
// depend on. It is constructed once at startup and injected.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}
