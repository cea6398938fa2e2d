package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/buxdao/holder-bot/internal/adapter"
)

// Policy configures a bounded exponential backoff.
// Delays are deterministic: BaseDelay, BaseDelay*Multiplier, ... capped at MaxDelay.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt
	MaxRetries int
	BaseDelay  time.Duration
	Multiplier float64
	MaxDelay   time.Duration

	// Retryable decides whether a failed attempt may be retried. Nil retries every error.
	Retryable func(error) bool

	// Notify is called before each retry sleep, attempt starting at 1
	Notify func(attempt int, err error, delay time.Duration)

	// Clock drives the sleeps between attempts. Nil uses the wall clock.
	Clock adapter.Clock
}

// DefaultPolicy returns 3 retries with delays of 2s, 4s and 8s
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		Multiplier: 2,
		MaxDelay:   30 * time.Second,
	}
}

// Do runs op until it succeeds, returns a non-retryable error, exhausts the retries or ctx is done.
// The error of the last attempt is returned unwrapped.
func Do(ctx context.Context, policy Policy, op func() error) error {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if policy.Multiplier < 1 {
		policy.Multiplier = 2
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.BaseDelay
	b.Multiplier = policy.Multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	if policy.MaxDelay > 0 {
		b.MaxInterval = policy.MaxDelay
	}

	attempt := 0
	operation := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if policy.Retryable != nil && !policy.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		attempt++
		if policy.Notify != nil {
			policy.Notify(attempt, err, delay)
		}
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(b, uint64(policy.MaxRetries)), ctx)
	if policy.Clock == nil {
		return backoff.RetryNotify(operation, bo, notify)
	}
	return backoff.RetryNotifyWithTimer(operation, bo, notify, &clockTimer{clock: policy.Clock})
}

// clockTimer implements backoff.Timer on top of adapter.Clock
type clockTimer struct {
	clock adapter.Clock
	c     <-chan time.Time
}

func (t *clockTimer) Start(duration time.Duration) {
	t.c = t.clock.After(duration)
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}
