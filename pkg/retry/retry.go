// Package retry provides a reusable exponential backoff policy on top of
// github.com/sethvargo/go-retry.
package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

// Policy describes how many times an operation runs and how long to wait
// between attempts. MaxAttempts counts the first call.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// Default is 4 attempts starting at 0.5s and doubling.
var Default = Policy{MaxAttempts: 4, BaseDelay: 500 * time.Millisecond, Multiplier: 2}

// Backoff returns a fresh, stateful backoff for a single Do call.
func (p Policy) Backoff() goretry.Backoff {
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	delay := p.BaseDelay
	next := goretry.BackoffFunc(func() (time.Duration, bool) {
		d := delay
		delay = time.Duration(float64(delay) * mult)
		return d, false
	})

	retries := p.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return goretry.WithMaxRetries(uint64(retries), next)
}

// Delays lists the waits between attempts, mostly useful for logging.
func (p Policy) Delays() []time.Duration {
	b := p.Backoff()
	var out []time.Duration
	for {
		d, stop := b.Next()
		if stop {
			return out
		}
		out = append(out, d)
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, or the
// policy is exhausted. fn marks errors worth another attempt with Retryable.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return goretry.Do(ctx, p.Backoff(), fn)
}

// Retryable wraps err so Do schedules another attempt.
func Retryable(err error) error {
	return goretry.RetryableError(err)
}
