package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/userd-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CounterStore = (*CounterStore)(nil)

// Key prefix for counters
const counterPrefix = "counter:"

// CounterStore implements driven.CounterStore using Redis.
//
// INCR is Redis' native atomic increment-and-fetch: a missing key counts as
// 0 and the first call returns 1, which matches the counter contract
// exactly. Counters are never deleted.
type CounterStore struct {
	client *redis.Client
}

// NewCounterStore creates a new Redis-backed CounterStore
func NewCounterStore(client *redis.Client) *CounterStore {
	return &CounterStore{client: client}
}

// Next atomically increments the named counter and returns the new value
func (s *CounterStore) Next(ctx context.Context, name string) (int64, error) {
	value, err := s.client.Incr(ctx, counterPrefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %q: %w", name, err)
	}
	return value, nil
}
