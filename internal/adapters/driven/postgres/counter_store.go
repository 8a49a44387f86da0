package postgres

import (
	"context"

	"github.com/custodia-labs/userd-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CounterStore = (*CounterStore)(nil)

// CounterStore implements driven.CounterStore using PostgreSQL.
//
// Next is a single statement, so the read-increment-write is atomic under
// the database's row lock. Two concurrent callers serialize on the row and
// always see distinct values.
type CounterStore struct {
	db *DB
}

// NewCounterStore creates a new CounterStore
func NewCounterStore(db *DB) *CounterStore {
	return &CounterStore{db: db}
}

// Next atomically increments the named counter and returns the new value,
// creating the counter at 1 on first use
func (s *CounterStore) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO counters (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`

	var value int64
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}
