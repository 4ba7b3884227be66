package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

// Strategy retries an operation Attempts times in total. The wait starts at
// Delay and doubles after each retry, capped at MaxDelay when it is set.
type Strategy struct {
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
}

func (s Strategy) backoff() goretry.Backoff {
	attempts := max(s.Attempts, 1)
	delay := s.Delay
	if delay <= 0 {
		delay = time.Millisecond
	}

	b := goretry.NewExponential(delay)
	if s.MaxDelay > 0 {
		b = goretry.WithCappedDuration(s.MaxDelay, b)
	}
	return goretry.WithMaxRetries(uint64(attempts-1), b)
}

// Do runs fn until it succeeds, returns an error retryable rejects, or the
// attempts run out, in which case the last error is returned.
func (s Strategy) Do(ctx context.Context, retryable func(error) bool, fn func() error) error {
	return goretry.Do(ctx, s.backoff(), func(context.Context) error {
		err := fn()
		if err != nil && retryable(err) {
			return goretry.RetryableError(err)
		}
		return err
	})
}
