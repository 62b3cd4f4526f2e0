package enhance

import (
	"errors"
	"math/rand"
	"time"
)

// MaxAttempts bounds enhancement calls: one retry, then give up and keep the
// original text. The remote service is optional, never worth waiting on.
const MaxAttempts = 2

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(base) / 2))
	return base + jitter
}
