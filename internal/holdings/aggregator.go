package holdings

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/providers/solana"
	"github.com/buxdao/holder-bot/internal/registry"
	"github.com/buxdao/holder-bot/internal/retry"
	"github.com/buxdao/holder-bot/internal/store"
)

// Config configures the aggregator
type Config struct {
	// BuxMint is the mint of the fungible reward token
	BuxMint string
	// Retry is applied to each wallet read; only rate-limit failures are retried
	Retry retry.Policy
	// WalletDelay is the pause between two consecutive wallet reads
	WalletDelay time.Duration
}

// WalletFailure records a wallet that could not be read
type WalletFailure struct {
	Wallet domain.WalletAddress
	Err    error
}

// AggregateResult is the outcome of one aggregation
type AggregateResult struct {
	Snapshot *domain.HoldingsSnapshot
	// Wallets lists every linked wallet, including the failed ones
	Wallets  []domain.WalletAddress
	Failures []WalletFailure
}

// Partial reports whether at least one wallet could not be read
func (r *AggregateResult) Partial() bool {
	return len(r.Failures) > 0
}

// Aggregator computes the holdings snapshot of a user across every linked wallet
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// Aggregate reads each linked wallet sequentially and unions the results.
	// Only a registry failure fails the whole aggregation; wallet failures are reported in the result.
	Aggregate(ctx context.Context, userID domain.UserID) (*AggregateResult, error)
}

type aggregator struct {
	cfg       Config
	wallets   store.WalletRegistry
	reader    solana.ChainReader
	hashlists registry.HashlistRegistry
	clock     adapter.Clock
}

// NewAggregator creates an aggregator
func NewAggregator(
	cfg Config,
	wallets store.WalletRegistry,
	reader solana.ChainReader,
	hashlists registry.HashlistRegistry,
	clock adapter.Clock,
) Aggregator {
	return &aggregator{
		cfg:       cfg,
		wallets:   wallets,
		reader:    reader,
		hashlists: hashlists,
		clock:     clock,
	}
}

// Aggregate computes the holdings snapshot of userID
func (a *aggregator) Aggregate(ctx context.Context, userID domain.UserID) (*AggregateResult, error) {
	wallets, err := a.wallets.Wallets(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &AggregateResult{
		Snapshot: domain.NewHoldingsSnapshot(),
		Wallets:  wallets,
	}
	if len(wallets) == 0 {
		return result, nil
	}

	// One membership snapshot for the whole aggregation, even if a reload happens meanwhile
	classifier := NewClassifier(a.hashlists.Current(), a.cfg.BuxMint)

	for i, wallet := range wallets {
		if i > 0 && a.cfg.WalletDelay > 0 {
			if err := a.clock.Sleep(ctx, a.cfg.WalletDelay); err != nil {
				return nil, fmt.Errorf("aggregation of %s interrupted: %w", userID, err)
			}
		}

		snapshot, err := a.readWallet(ctx, userID, wallet)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("aggregation of %s interrupted: %w", userID, ctx.Err())
			}
			logger.WarnCtx(ctx, "Skipping wallet that could not be read",
				logger.User(userID),
				logger.Wallet(wallet),
				zap.Error(err))
			result.Failures = append(result.Failures, WalletFailure{Wallet: wallet, Err: err})
			continue
		}

		result.Snapshot.Merge(classifier.Classify(snapshot))
	}

	logger.DebugCtx(ctx, "Holdings aggregated",
		logger.User(userID),
		zap.Int("wallets", len(wallets)),
		zap.Int("failures", len(result.Failures)),
		zap.Any("counts", result.Snapshot.Counts()),
		zap.Uint64("fungible_balance", result.Snapshot.FungibleBalance))

	return result, nil
}

func (a *aggregator) readWallet(ctx context.Context, userID domain.UserID, wallet domain.WalletAddress) (*domain.TokenAccountSnapshot, error) {
	policy := a.cfg.Retry
	policy.Retryable = domain.IsRateLimited
	policy.Clock = a.clock
	policy.Notify = func(attempt int, err error, delay time.Duration) {
		logger.WarnCtx(ctx, "Wallet read rate limited, retrying",
			logger.User(userID),
			logger.Wallet(wallet),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))
	}

	var snapshot *domain.TokenAccountSnapshot
	err := retry.Do(ctx, policy, func() error {
		var err error
		snapshot, err = a.reader.GetTokenAccounts(ctx, wallet)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
