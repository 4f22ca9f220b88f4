// Package clock holds context-aware waiting helpers for retrying writers.
package clock

import (
	"context"
	"fmt"
	"time"
)

// Retry calls fn up to attempts times, sleeping backoff before the second call
// and doubling the pause after each failure. It stops early when ctx is done.
func Retry(ctx context.Context, attempts int, backoff time.Duration, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if sleepErr := SleepWithContext(ctx, backoff); sleepErr != nil {
				return fmt.Errorf("%w (last error: %v)", sleepErr, err)
			}
			backoff *= 2
		}
		if err = fn(ctx); err == nil {
			return nil
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, err)
}

// SleepWithContext pauses for d. It returns ctx.Err() if ctx ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
