package rewards_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/mocks"
	"github.com/buxdao/holder-bot/internal/rewards"
	"github.com/buxdao/holder-bot/internal/store/schema"
)

const userID = domain.UserID("user-1")

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func snapshotWith(counts map[domain.CollectionKey]int) *domain.HoldingsSnapshot {
	s := domain.NewHoldingsSnapshot()
	for key, n := range counts {
		for i := 0; i < n; i++ {
			s.AddToken(key, string(key)+"-"+string(rune('a'+i)))
		}
	}
	return s
}

func TestDailyRatesCoverEveryCollection(t *testing.T) {
	for _, key := range domain.AllCollections {
		rate, ok := rewards.DailyRates[key]
		assert.True(t, ok, "missing rate for %s", key)
		assert.Positive(t, rate)
	}
	assert.Len(t, rewards.DailyRates, len(domain.AllCollections))
}

func TestDailyRate(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *domain.HoldingsSnapshot
		expected uint64
	}{
		{name: "nil snapshot", snapshot: nil, expected: 0},
		{name: "empty snapshot", snapshot: domain.NewHoldingsSnapshot(), expected: 0},
		{
			name:     "single collection",
			snapshot: snapshotWith(map[domain.CollectionKey]int{domain.CollectionCelebCatz: 2}),
			expected: 40,
		},
		{
			name: "mixed collections",
			snapshot: snapshotWith(map[domain.CollectionKey]int{
				domain.CollectionFckedCatz:       3,
				domain.CollectionMoneyMonsters3D: 1,
				domain.CollectionDoodleBots:      2,
			}),
			expected: 3*2 + 4 + 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rewards.DailyRate(tt.snapshot))
		})
	}
}

func newAccruer(t *testing.T, now time.Time) (rewards.Accruer, *mocks.MockAccrualLedger) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ledger := mocks.NewMockAccrualLedger(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	return rewards.NewAccruer(ledger, clock), ledger
}

func TestAccrue_NewUser(t *testing.T) {
	accruer, ledger := newAccruer(t, t0)
	ledger.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
	ledger.EXPECT().Init(gomock.Any(), userID, t0).Return(&schema.AccrualLedger{UserID: string(userID), LastAccrualAt: t0}, nil)

	result, err := accruer.Accrue(context.Background(), userID, snapshotWith(map[domain.CollectionKey]int{domain.CollectionCelebCatz: 1}))
	require.NoError(t, err)
	assert.Zero(t, result.ClaimableBalance)
	assert.Zero(t, result.Accrued)
	assert.Equal(t, uint64(20), result.DailyRate)
	assert.Equal(t, t0.Add(24*time.Hour), result.NextBoundary)
}

func TestAccrue_Boundary(t *testing.T) {
	snapshot := snapshotWith(map[domain.CollectionKey]int{domain.CollectionFckedCatz: 2, domain.CollectionAIBitbots: 1})
	rate := rewards.DailyRate(snapshot)
	entry := &schema.AccrualLedger{UserID: string(userID), ClaimableBalance: 100, LastAccrualAt: t0}

	t.Run("before 24h the balance is unchanged", func(t *testing.T) {
		accruer, ledger := newAccruer(t, t0.Add(23*time.Hour+59*time.Minute))
		ledger.EXPECT().Get(gomock.Any(), userID).Return(entry, nil)

		result, err := accruer.Accrue(context.Background(), userID, snapshot)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), result.ClaimableBalance)
		assert.Zero(t, result.Accrued)
		assert.Equal(t, t0.Add(24*time.Hour), result.NextBoundary)
	})

	t.Run("after 24h the daily rate is added once", func(t *testing.T) {
		now := t0.Add(24*time.Hour + time.Minute)
		accruer, ledger := newAccruer(t, now)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(entry, nil)
		ledger.EXPECT().
			CompareAndAccrue(gomock.Any(), userID, t0, now, rate, snapshot.Counts()).
			Return(&schema.AccrualLedger{UserID: string(userID), ClaimableBalance: 100 + rate, LastAccrualAt: now}, nil)

		result, err := accruer.Accrue(context.Background(), userID, snapshot)
		require.NoError(t, err)
		assert.Equal(t, 100+rate, result.ClaimableBalance)
		assert.Equal(t, rate, result.Accrued)
		assert.Equal(t, now.Add(24*time.Hour), result.NextBoundary)
	})

	t.Run("exactly 24h crosses the boundary", func(t *testing.T) {
		now := t0.Add(24 * time.Hour)
		accruer, ledger := newAccruer(t, now)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(entry, nil)
		ledger.EXPECT().
			CompareAndAccrue(gomock.Any(), userID, t0, now, rate, gomock.Any()).
			Return(&schema.AccrualLedger{ClaimableBalance: 100 + rate, LastAccrualAt: now}, nil)

		result, err := accruer.Accrue(context.Background(), userID, snapshot)
		require.NoError(t, err)
		assert.Equal(t, rate, result.Accrued)
	})
}

func TestAccrue_ConcurrentWriterWins(t *testing.T) {
	now := t0.Add(25 * time.Hour)
	accruer, ledger := newAccruer(t, now)
	snapshot := snapshotWith(map[domain.CollectionKey]int{domain.CollectionCelebCatz: 1})

	gomock.InOrder(
		ledger.EXPECT().Get(gomock.Any(), userID).Return(&schema.AccrualLedger{ClaimableBalance: 10, LastAccrualAt: t0}, nil),
		ledger.EXPECT().CompareAndAccrue(gomock.Any(), userID, t0, now, uint64(20), gomock.Any()).Return(nil, domain.ErrAccrualConflict),
		ledger.EXPECT().Get(gomock.Any(), userID).Return(&schema.AccrualLedger{ClaimableBalance: 30, LastAccrualAt: now.Add(-time.Second)}, nil),
	)

	result, err := accruer.Accrue(context.Background(), userID, snapshot)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), result.ClaimableBalance)
	assert.Zero(t, result.Accrued)
}

func TestAccrue_StoreErrors(t *testing.T) {
	storeErr := errors.Join(domain.ErrAccrualStore, errors.New("connection refused"))

	t.Run("get", func(t *testing.T) {
		accruer, ledger := newAccruer(t, t0)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(nil, storeErr)

		_, err := accruer.Accrue(context.Background(), userID, domain.NewHoldingsSnapshot())
		assert.ErrorIs(t, err, domain.ErrAccrualStore)
	})

	t.Run("init", func(t *testing.T) {
		accruer, ledger := newAccruer(t, t0)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
		ledger.EXPECT().Init(gomock.Any(), userID, t0).Return(nil, storeErr)

		_, err := accruer.Accrue(context.Background(), userID, domain.NewHoldingsSnapshot())
		assert.ErrorIs(t, err, domain.ErrAccrualStore)
	})

	t.Run("compare and accrue", func(t *testing.T) {
		now := t0.Add(48 * time.Hour)
		accruer, ledger := newAccruer(t, now)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(&schema.AccrualLedger{LastAccrualAt: t0}, nil)
		ledger.EXPECT().CompareAndAccrue(gomock.Any(), userID, t0, now, uint64(0), gomock.Any()).Return(nil, storeErr)

		_, err := accruer.Accrue(context.Background(), userID, domain.NewHoldingsSnapshot())
		assert.ErrorIs(t, err, domain.ErrAccrualStore)
	})
}

func TestAccrue_NeverDecreases(t *testing.T) {
	balance := uint64(0)
	last := t0
	snapshot := snapshotWith(map[domain.CollectionKey]int{domain.CollectionMoneyMonsters: 3})
	rate := rewards.DailyRate(snapshot)

	for _, offset := range []time.Duration{time.Hour, 24 * time.Hour, 30 * time.Hour, 49 * time.Hour, 73 * time.Hour} {
		now := t0.Add(offset)
		accruer, ledger := newAccruer(t, now)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(&schema.AccrualLedger{ClaimableBalance: balance, LastAccrualAt: last}, nil)
		ledger.EXPECT().CompareAndAccrue(gomock.Any(), userID, last, now, rate, gomock.Any()).
			Return(&schema.AccrualLedger{ClaimableBalance: balance + rate, LastAccrualAt: now}, nil).
			MaxTimes(1)

		result, err := accruer.Accrue(context.Background(), userID, snapshot)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.ClaimableBalance, balance)
		balance = result.ClaimableBalance
		last = result.LastAccrualAt
	}

	// Accrued at 24h and 49h; 73h is exactly 24h after 49h
	assert.Equal(t, 3*rate, balance)
}

func TestDefer(t *testing.T) {
	snapshot := snapshotWith(map[domain.CollectionKey]int{domain.CollectionFckedCatz: 1})

	t.Run("past the boundary the entry is left untouched", func(t *testing.T) {
		accruer, ledger := newAccruer(t, t0.Add(48*time.Hour))
		ledger.EXPECT().Get(gomock.Any(), userID).
			Return(&schema.AccrualLedger{UserID: string(userID), ClaimableBalance: 100, LastAccrualAt: t0}, nil)
		// No Init or CompareAndAccrue expectation: a write fails the test

		result, err := accruer.Defer(context.Background(), userID, snapshot)
		require.NoError(t, err)
		assert.True(t, result.Deferred)
		assert.Equal(t, uint64(100), result.ClaimableBalance)
		assert.Zero(t, result.Accrued)
		assert.Equal(t, t0, result.LastAccrualAt)
		assert.Equal(t, t0.Add(24*time.Hour), result.NextBoundary)
	})

	t.Run("unknown user gets no entry", func(t *testing.T) {
		accruer, ledger := newAccruer(t, t0)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)

		result, err := accruer.Defer(context.Background(), userID, snapshot)
		require.NoError(t, err)
		assert.True(t, result.Deferred)
		assert.Zero(t, result.ClaimableBalance)
		assert.True(t, result.LastAccrualAt.IsZero())
	})

	t.Run("store failure", func(t *testing.T) {
		accruer, ledger := newAccruer(t, t0)
		ledger.EXPECT().Get(gomock.Any(), userID).Return(nil, domain.ErrAccrualStore)

		_, err := accruer.Defer(context.Background(), userID, snapshot)
		assert.ErrorIs(t, err, domain.ErrAccrualStore)
	})
}
