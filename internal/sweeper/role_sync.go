package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/profile"
	"github.com/buxdao/holder-bot/internal/store"
)

const DEFAULT_SYNC_INTERVAL = 6 * time.Hour

// RoleSyncSweeperConfig holds configuration for the role sync sweeper
type RoleSyncSweeperConfig struct {
	// Interval is the pause between the end of one cycle and the start of the next
	Interval time.Duration
}

// CycleStats summarizes one sweep cycle
type CycleStats struct {
	Users     int
	Refreshed int
	Failed    int
	Duration  time.Duration
}

// roleSyncSweeper periodically refreshes every registered user so that
// roles and rewards converge without an explicit user command
type roleSyncSweeper struct {
	config    RoleSyncSweeperConfig
	wallets   store.WalletRegistry
	profiles  profile.Service
	clock     adapter.Clock
	onCycle   func(CycleStats)
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRoleSyncSweeper creates a new role sync sweeper
func NewRoleSyncSweeper(
	config RoleSyncSweeperConfig,
	wallets store.WalletRegistry,
	profiles profile.Service,
	clock adapter.Clock,
) Sweeper {
	return newRoleSyncSweeper(config, wallets, profiles, clock, nil)
}

func newRoleSyncSweeper(
	config RoleSyncSweeperConfig,
	wallets store.WalletRegistry,
	profiles profile.Service,
	clock adapter.Clock,
	onCycle func(CycleStats),
) *roleSyncSweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SYNC_INTERVAL
	}
	return &roleSyncSweeper{
		config:    config,
		wallets:   wallets,
		profiles:  profiles,
		clock:     clock,
		onCycle:   onCycle,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *roleSyncSweeper) Name() string {
	return "role-sync-sweeper"
}

// Start runs a sweep cycle immediately and then once per interval until ctx is done or Stop is called
func (s *roleSyncSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting role sync sweeper", zap.Duration("interval", s.config.Interval))

	for {
		stats, err := s.runSweepCycle(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}
		if s.onCycle != nil {
			s.onCycle(stats)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Role sync sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Role sync sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop gracefully stops the sweeper, waiting for the current cycle to finish
func (s *roleSyncSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping role sync sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Role sync sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Role sync sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle refreshes every registered user one after another.
// A failing user is logged and skipped.
func (s *roleSyncSweeper) runSweepCycle(ctx context.Context) (stats CycleStats, err error) {
	startTime := s.clock.Now()
	defer func() {
		stats.Duration = s.clock.Since(startTime)
	}()

	users, err := s.wallets.Users(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to list users: %w", err)
	}
	stats.Users = len(users)

	logger.InfoCtx(ctx, "Starting sweep cycle", zap.Int("users", len(users)))

	for _, userID := range users {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Sweep cycle interrupted by stop request",
				zap.Int("refreshed", stats.Refreshed),
				zap.Int("remaining", len(users)-stats.Refreshed-stats.Failed))
			return stats, nil
		default:
		}

		if _, err := s.profiles.Refresh(ctx, userID); err != nil {
			stats.Failed++
			if errors.Is(err, context.Canceled) {
				return stats, err
			}
			logger.ErrorCtx(ctx, fmt.Errorf("failed to refresh user: %w", err), logger.User(userID))
			continue
		}
		stats.Refreshed++
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Int("users", stats.Users),
		zap.Int("refreshed", stats.Refreshed),
		zap.Int("failed", stats.Failed),
		zap.Duration("duration", s.clock.Since(startTime)))

	return stats, nil
}
