// Package retry holds the polling policy used while waiting for a backup volume.
package retry

import (
	"context"
	"fmt"
	"time"
)

// DefaultInterval is the pause between volume discovery attempts.
const DefaultInterval = 10 * time.Second

// Policy is a fixed-interval retry policy with no backoff or jitter.
// MaxAttempts of zero means retry forever.
type Policy struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPolicy polls every ten seconds without limit.
func DefaultPolicy() Policy {
	return Policy{Interval: DefaultInterval}
}

// NewPolicy builds a policy from raw config values; zero or negative values
// fall back to the defaults.
func NewPolicy(interval time.Duration, maxAttempts int) Policy {
	p := DefaultPolicy()
	if interval > 0 {
		p.Interval = interval
	}
	if maxAttempts > 0 {
		p.MaxAttempts = maxAttempts
	}
	return p
}

// Validate ensures the policy can be applied.
func (p Policy) Validate() error {
	if p.Interval <= 0 {
		return fmt.Errorf("retry interval must be >0")
	}
	if p.MaxAttempts < 0 {
		return fmt.Errorf("max attempts cannot be negative")
	}
	return nil
}

// Exhausted reports whether attempt (1-based) was the last one allowed.
func (p Policy) Exhausted(attempt int) bool {
	return p.MaxAttempts > 0 && attempt >= p.MaxAttempts
}

// Wait blocks for one interval or until ctx is done.
func (p Policy) Wait(ctx context.Context) error {
	timer := time.NewTimer(p.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
