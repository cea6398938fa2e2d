package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/holdings"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/rewards"
	"github.com/buxdao/holder-bot/internal/roles"
	"github.com/buxdao/holder-bot/internal/store"
)

// Profile is the result of a full verification of one user
type Profile struct {
	UserID   domain.UserID          `json:"user_id"`
	Holdings *Holdings              `json:"holdings"`
	Rewards  *rewards.AccrualResult `json:"rewards"`
	Roles    *roles.Delta           `json:"roles"`
}

// Holdings is the presentation form of an aggregation
type Holdings struct {
	Wallets         []domain.WalletAddress       `json:"wallets"`
	Collections     map[domain.CollectionKey]int `json:"collections"`
	FungibleBalance uint64                       `json:"fungible_balance"`
	DailyRate       uint64                       `json:"daily_rate"`
	// FailedWallets lists wallets that could not be read; the counts exclude them
	FailedWallets []domain.WalletAddress `json:"failed_wallets,omitempty"`
	Partial       bool                   `json:"partial"`
	FetchedAt     time.Time              `json:"fetched_at"`

	snapshot *domain.HoldingsSnapshot
}

// Snapshot returns the aggregated snapshot the holdings were built from
func (h *Holdings) Snapshot() *domain.HoldingsSnapshot {
	return h.snapshot
}

// Service runs the holder workflows
//
//go:generate mockgen -source=service.go -destination=../mocks/profile.go -package=mocks -mock_names=Service=MockProfileService
type Service interface {
	// Refresh aggregates holdings, then accrues rewards, then reconciles roles, in that order.
	// When a wallet could not be read the accrual is deferred and roles are only added.
	Refresh(ctx context.Context, userID domain.UserID) (*Profile, error)

	// Holdings aggregates holdings without side effects
	Holdings(ctx context.Context, userID domain.UserID) (*Holdings, error)

	// LinkWallet validates and links a wallet
	LinkWallet(ctx context.Context, userID domain.UserID, wallet string) (domain.WalletAddress, error)

	// UnlinkWallet unlinks a wallet. Unlinking the last wallet removes the managed roles.
	UnlinkWallet(ctx context.Context, userID domain.UserID, wallet string) error
}

type service struct {
	wallets    store.WalletRegistry
	aggregator holdings.Aggregator
	accruer    rewards.Accruer
	reconciler roles.Reconciler
	clock      adapter.Clock
}

// NewService creates the profile service
func NewService(
	wallets store.WalletRegistry,
	aggregator holdings.Aggregator,
	accruer rewards.Accruer,
	reconciler roles.Reconciler,
	clock adapter.Clock,
) Service {
	return &service{
		wallets:    wallets,
		aggregator: aggregator,
		accruer:    accruer,
		reconciler: reconciler,
		clock:      clock,
	}
}

// Refresh runs the full verification of userID
func (s *service) Refresh(ctx context.Context, userID domain.UserID) (*Profile, error) {
	h, err := s.Holdings(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Missing wallets would read as missing holdings
	accrue, reconcile := s.accruer.Accrue, s.reconciler.Reconcile
	if h.Partial {
		logger.WarnCtx(ctx, "Holdings incomplete, deferring accrual and role removals",
			logger.User(userID),
			zap.Int("failed_wallets", len(h.FailedWallets)))
		accrue, reconcile = s.accruer.Defer, s.reconciler.Grant
	}

	accrual, err := accrue(ctx, userID, h.snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to accrue rewards: %w", err)
	}

	delta, err := reconcile(ctx, userID, h.snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile roles: %w", err)
	}

	logger.InfoCtx(ctx, "Profile refreshed",
		logger.User(userID),
		zap.Bool("partial", h.Partial),
		zap.Uint64("claimable_balance", accrual.ClaimableBalance),
		zap.Int("roles_added", len(delta.Added)),
		zap.Int("roles_removed", len(delta.Removed)))

	return &Profile{
		UserID:   userID,
		Holdings: h,
		Rewards:  accrual,
		Roles:    delta,
	}, nil
}

// Holdings aggregates the holdings of userID
func (s *service) Holdings(ctx context.Context, userID domain.UserID) (*Holdings, error) {
	result, err := s.aggregator.Aggregate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate holdings: %w", err)
	}

	h := &Holdings{
		Wallets:         result.Wallets,
		Collections:     result.Snapshot.Counts(),
		FungibleBalance: result.Snapshot.FungibleBalance,
		DailyRate:       rewards.DailyRate(result.Snapshot),
		Partial:         result.Partial(),
		FetchedAt:       s.clock.Now().UTC(),
		snapshot:        result.Snapshot,
	}
	for _, failure := range result.Failures {
		h.FailedWallets = append(h.FailedWallets, failure.Wallet)
	}
	return h, nil
}

// LinkWallet validates and links a wallet
func (s *service) LinkWallet(ctx context.Context, userID domain.UserID, wallet string) (domain.WalletAddress, error) {
	address, err := domain.ParseWalletAddress(wallet)
	if err != nil {
		return "", err
	}

	added, err := s.wallets.AddWallet(ctx, userID, address)
	if err != nil {
		return "", err
	}
	if !added {
		return address, domain.ErrWalletAlreadyLinked
	}

	logger.InfoCtx(ctx, "Wallet linked", logger.User(userID), logger.Wallet(address))
	return address, nil
}

// UnlinkWallet unlinks a wallet
func (s *service) UnlinkWallet(ctx context.Context, userID domain.UserID, wallet string) error {
	removed, err := s.wallets.RemoveWallet(ctx, userID, domain.WalletAddress(wallet))
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrWalletNotLinked
	}

	logger.InfoCtx(ctx, "Wallet unlinked", logger.User(userID), logger.Wallet(domain.WalletAddress(wallet)))

	// A user without wallets drops out of the registry, so the sweeper would never revisit them
	remaining, err := s.wallets.Wallets(ctx, userID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to list remaining wallets: %w", err), logger.User(userID))
		return nil
	}
	if len(remaining) > 0 {
		return nil
	}
	if _, err := s.reconciler.Reconcile(ctx, userID, domain.NewHoldingsSnapshot()); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to remove roles after last wallet unlink: %w", err), logger.User(userID))
	}
	return nil
}
