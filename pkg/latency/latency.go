// Package latency simulates network delay for mocked responses.
package latency

import (
	"context"
	"time"
)

// Strategy decides how long a mocked response is held back.
type Strategy interface {
	Wait(ctx context.Context) error
}

// Fixed delays every response by the same duration.
type Fixed time.Duration

// Wait blocks for the configured duration or until ctx is done.
func (f Fixed) Wait(ctx context.Context) error {
	d := time.Duration(f)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// None answers immediately.
var None Strategy = Fixed(0)

// FromDuration returns None for non-positive durations and Fixed otherwise.
func FromDuration(d time.Duration) Strategy {
	if d <= 0 {
		return None
	}
	return Fixed(d)
}
