package driven

import "context"

// CounterStore hands out values from named monotonic counters.
//
// Next must be a single atomic increment-and-fetch at the backing store;
// two concurrent callers for the same name must never receive the same
// value. A counter that does not exist yet starts at 1.
type CounterStore interface {
	Next(ctx context.Context, name string) (int64, error)
}
