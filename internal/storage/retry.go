package storage

import (
	"context"
	"fmt"
	"time"
)

// RetryBaseDelay is the wait after the first failed attempt; each later
// attempt waits one more multiple of it.
var RetryBaseDelay = 500 * time.Millisecond

// Retry calls fn up to attempts times with linear backoff. It stops early when
// ctx is done.
func Retry[T any](ctx context.Context, attempts int, fn func() (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(i+1) * RetryBaseDelay):
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
