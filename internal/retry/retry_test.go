package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/mocks"
	"github.com/buxdao/holder-bot/internal/retry"
)

// firedAfter returns a channel that is immediately ready
func firedAfter(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Unix(0, 0).Add(d)
	return ch
}

var errRateLimited = &domain.ChainQueryError{Wallet: "w", StatusCode: 429, Err: errors.New("too many requests")}

func TestDo(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name          string
		failures      []error
		expectedErr   error
		expectedCalls int
		expectedWaits []time.Duration
	}{
		{
			name:          "success on first attempt",
			expectedCalls: 1,
		},
		{
			name:          "rate limited once then success",
			failures:      []error{errRateLimited},
			expectedCalls: 2,
			expectedWaits: []time.Duration{2 * time.Second},
		},
		{
			name:          "retries exhausted",
			failures:      []error{errRateLimited, errRateLimited, errRateLimited, errRateLimited},
			expectedErr:   domain.ErrRateLimited,
			expectedCalls: 4,
			expectedWaits: []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second},
		},
		{
			name:          "non retryable error returns immediately",
			failures:      []error{errBoom},
			expectedErr:   errBoom,
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClock := mocks.NewMockClock(ctrl)
			var waits []time.Duration
			mockClock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
				waits = append(waits, d)
				return firedAfter(d)
			}).AnyTimes()

			policy := retry.DefaultPolicy()
			policy.Retryable = domain.IsRateLimited
			policy.Clock = mockClock

			calls := 0
			err := retry.Do(context.Background(), policy, func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCalls, calls)
			assert.Equal(t, tt.expectedWaits, waits)
		})
	}
}

func TestDo_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().After(gomock.Any()).DoAndReturn(firedAfter).Times(2)

	var attempts []int
	policy := retry.DefaultPolicy()
	policy.Clock = mockClock
	policy.Notify = func(attempt int, err error, delay time.Duration) {
		attempts = append(attempts, attempt)
		assert.Equal(t, time.Duration(1<<(attempt-1))*2*time.Second, delay)
	}

	calls := 0
	err := retry.Do(context.Background(), policy, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestDo_MaxDelayCaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClock := mocks.NewMockClock(ctrl)
	var waits []time.Duration
	mockClock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		return firedAfter(d)
	}).AnyTimes()

	policy := retry.Policy{
		MaxRetries: 4,
		BaseDelay:  time.Second,
		Multiplier: 3,
		MaxDelay:   5 * time.Second,
		Clock:      mockClock,
	}
	_ = retry.Do(context.Background(), policy, func() error { return errors.New("always") })

	assert.Equal(t, []time.Duration{time.Second, 3 * time.Second, 5 * time.Second, 5 * time.Second}, waits)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	})

	calls := 0
	policy := retry.DefaultPolicy()
	policy.Clock = mockClock
	err := retry.Do(ctx, policy, func() error {
		calls++
		return errRateLimited
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroRetries(t *testing.T) {
	policy := retry.DefaultPolicy()
	policy.MaxRetries = 0

	calls := 0
	err := retry.Do(context.Background(), policy, func() error {
		calls++
		return errRateLimited
	})

	assert.ErrorIs(t, err, domain.ErrChainQuery)
	assert.Equal(t, 1, calls)
}
