package sweeper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/mocks"
	"github.com/buxdao/holder-bot/internal/profile"
)

type testSweeperMocks struct {
	ctrl     *gomock.Controller
	wallets  *mocks.MockWalletRegistry
	profiles *mocks.MockProfileService
	clock    *mocks.MockClock
	cycles   chan CycleStats
	sweeper  *roleSyncSweeper
}

func setupTestSweeper(t *testing.T) *testSweeperMocks {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	tm := &testSweeperMocks{
		ctrl:     ctrl,
		wallets:  mocks.NewMockWalletRegistry(ctrl),
		profiles: mocks.NewMockProfileService(ctrl),
		clock:    mocks.NewMockClock(ctrl),
		cycles:   make(chan CycleStats, 10),
	}
	tm.sweeper = newRoleSyncSweeper(RoleSyncSweeperConfig{Interval: time.Hour}, tm.wallets, tm.profiles, tm.clock,
		func(stats CycleStats) { tm.cycles <- stats })

	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()

	return tm
}

func (tm *testSweeperMocks) start(t *testing.T, ctx context.Context) <-chan error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() {
		errCh <- tm.sweeper.Start(ctx)
	}()
	return errCh
}

func (tm *testSweeperMocks) waitCycle(t *testing.T) CycleStats {
	t.Helper()
	select {
	case stats := <-tm.cycles:
		return stats
	case <-time.After(5 * time.Second):
		t.Fatal("sweep cycle did not complete")
		return CycleStats{}
	}
}

func TestRoleSyncSweeper_Name(t *testing.T) {
	tm := setupTestSweeper(t)
	assert.Equal(t, "role-sync-sweeper", tm.sweeper.Name())
}

func TestRoleSyncSweeper_DefaultInterval(t *testing.T) {
	s := newRoleSyncSweeper(RoleSyncSweeperConfig{}, nil, nil, nil, nil)
	assert.Equal(t, DEFAULT_SYNC_INTERVAL, s.config.Interval)
}

func TestRoleSyncSweeper_RefreshesEveryUserAndContinuesOnError(t *testing.T) {
	tm := setupTestSweeper(t)

	users := []domain.UserID{"1", "2", "3"}
	tm.wallets.EXPECT().Users(gomock.Any()).Return(users, nil)
	gomock.InOrder(
		tm.profiles.EXPECT().Refresh(gomock.Any(), domain.UserID("1")).Return(&profile.Profile{UserID: "1"}, nil),
		tm.profiles.EXPECT().Refresh(gomock.Any(), domain.UserID("2")).
			Return(nil, fmt.Errorf("failed to reconcile roles: %w", domain.ErrIdentityService)),
		tm.profiles.EXPECT().Refresh(gomock.Any(), domain.UserID("3")).Return(&profile.Profile{UserID: "3"}, nil),
	)
	// The next cycle never becomes due
	tm.clock.EXPECT().After(time.Hour).Return(make(chan time.Time)).AnyTimes()

	errCh := tm.start(t, context.Background())
	stats := tm.waitCycle(t)

	assert.Equal(t, CycleStats{Users: 3, Refreshed: 2, Failed: 1, Duration: time.Second}, stats)

	require.NoError(t, tm.sweeper.Stop(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestRoleSyncSweeper_RunsAgainAfterInterval(t *testing.T) {
	tm := setupTestSweeper(t)

	tm.wallets.EXPECT().Users(gomock.Any()).Return([]domain.UserID{"1"}, nil).Times(2)
	tm.profiles.EXPECT().Refresh(gomock.Any(), domain.UserID("1")).Return(&profile.Profile{}, nil).Times(2)

	fired := make(chan time.Time, 1)
	fired <- time.Now()
	gomock.InOrder(
		tm.clock.EXPECT().After(time.Hour).Return(fired),
		tm.clock.EXPECT().After(time.Hour).Return(make(chan time.Time)),
	)

	errCh := tm.start(t, context.Background())
	tm.waitCycle(t)
	second := tm.waitCycle(t)
	assert.Equal(t, 1, second.Refreshed)

	require.NoError(t, tm.sweeper.Stop(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestRoleSyncSweeper_ListUsersFailure(t *testing.T) {
	tm := setupTestSweeper(t)

	tm.wallets.EXPECT().Users(gomock.Any()).Return(nil, domain.ErrRegistry)
	tm.clock.EXPECT().After(time.Hour).Return(make(chan time.Time)).AnyTimes()

	errCh := tm.start(t, context.Background())
	stats := tm.waitCycle(t)
	assert.Equal(t, 0, stats.Users)

	require.NoError(t, tm.sweeper.Stop(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestRoleSyncSweeper_ContextCanceled(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx, cancel := context.WithCancel(context.Background())

	tm.wallets.EXPECT().Users(gomock.Any()).Return([]domain.UserID{"1", "2"}, nil)
	tm.profiles.EXPECT().Refresh(gomock.Any(), domain.UserID("1")).
		DoAndReturn(func(ctx context.Context, _ domain.UserID) (*profile.Profile, error) {
			cancel()
			return nil, context.Canceled
		})
	tm.clock.EXPECT().After(time.Hour).Return(make(chan time.Time)).AnyTimes()

	errCh := tm.start(t, ctx)
	stats := tm.waitCycle(t)
	assert.Equal(t, CycleStats{Users: 2, Failed: 1, Duration: time.Second}, stats)
	assert.NoError(t, <-errCh)

	// Already stopped
	assert.NoError(t, tm.sweeper.Stop(context.Background()))
}

func TestRoleSyncSweeper_StartTwice(t *testing.T) {
	tm := setupTestSweeper(t)

	block := make(chan struct{})
	tm.wallets.EXPECT().Users(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.UserID, error) {
		<-block
		return nil, nil
	})
	tm.clock.EXPECT().After(time.Hour).Return(make(chan time.Time)).AnyTimes()

	errCh := tm.start(t, context.Background())
	require.Eventually(t, tm.sweeper.running.Load, time.Second, 10*time.Millisecond)

	err := tm.sweeper.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))

	close(block)
	tm.waitCycle(t)
	require.NoError(t, tm.sweeper.Stop(context.Background()))
	assert.NoError(t, <-errCh)
}
