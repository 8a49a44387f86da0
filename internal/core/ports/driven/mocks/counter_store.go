package mocks

import (
	"context"
	"sync"
)

// MockCounterStore is an in-memory implementation of CounterStore for testing
type MockCounterStore struct {
	mu       sync.Mutex
	counters map[string]int64

	// NextErr, when set, is returned by Next instead of a value
	NextErr error
}

// NewMockCounterStore creates a new MockCounterStore
func NewMockCounterStore() *MockCounterStore {
	return &MockCounterStore{
		counters: make(map[string]int64),
	}
}

func (m *MockCounterStore) Next(ctx context.Context, name string) (int64, error) {
	if m.NextErr != nil {
		return 0, m.NextErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
	return m.counters[name], nil
}
