// Package retry provides the bounded wait-then-retry policy used by the
// order-completion reconciler. Order creation is an asynchronous side effect
// of payment authorization upstream, so callers poll with fixed delays rather
// than assuming immediate visibility.
package retry

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned when every attempt failed.
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy is a fixed-schedule retry: an optional initial delay, then up to
// MaxAttempts calls spaced Interval apart. All waits honor context
// cancellation.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Interval     time.Duration
}

// Do runs fn until it succeeds, attempts run out, or ctx is done. The last
// attempt error is joined with ErrExhausted so callers can errors.Is both.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	if err := Sleep(ctx, p.InitialDelay); err != nil {
		return err
	}

	var last error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := Sleep(ctx, p.Interval); err != nil {
				return err
			}
		}
		if last = fn(ctx); last == nil {
			return nil
		}
	}
	return errors.Join(ErrExhausted, last)
}

// Sleep waits d or until ctx is done, whichever comes first. A zero or
// negative d returns immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
