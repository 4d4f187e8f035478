package infra

import (
	"time"
)

const (
	backoffBase = 1 * time.Second
	backoffMax  = 30 * time.Second
)

// CalculateBackoff returns the exponential backoff duration for a
// given retry count: base * 2^retry, capped at backoffMax. Negative
// counts return the base delay.
func CalculateBackoff(retryCount int) time.Duration {
	if retryCount < 0 {
		return backoffBase
	}
	// 2^30s is far beyond the cap already; guard the shift.
	if retryCount > 30 {
		return backoffMax
	}

	backoff := backoffBase * time.Duration(1<<retryCount)
	if backoff > backoffMax {
		return backoffMax
	}
	return backoff
}
