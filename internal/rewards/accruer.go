package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/store"
	"github.com/buxdao/holder-bot/internal/store/schema"
)

// AccrualResult is the ledger state after an accrual attempt
type AccrualResult struct {
	ClaimableBalance uint64    `json:"claimable_balance"`
	LastAccrualAt    time.Time `json:"last_accrual_at"`
	NextBoundary     time.Time `json:"next_boundary"`
	DailyRate        uint64    `json:"daily_rate"`
	// Accrued is the amount added by this call, 0 when no boundary was crossed
	Accrued uint64 `json:"accrued"`
	// Deferred is set when the accrual was skipped because the holdings were incomplete
	Deferred bool `json:"deferred,omitempty"`
}

// Accruer applies the daily reward to a user's ledger entry
//
//go:generate mockgen -source=accruer.go -destination=../mocks/accruer.go -package=mocks -mock_names=Accruer=MockAccruer
type Accruer interface {
	// Accrue adds DailyRate(snapshot) once at least 24h have passed since the last accrual.
	// A new user gets an entry with a zero balance and nothing accrued.
	// Concurrent calls for the same user accrue at most once per boundary.
	Accrue(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*AccrualResult, error)

	// Defer reports the ledger state without accruing or creating an entry.
	// The boundary stays where it is, so the next complete refresh accrues it.
	Defer(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*AccrualResult, error)
}

type accruer struct {
	ledger store.AccrualLedger
	clock  adapter.Clock
}

// NewAccruer creates an accruer
func NewAccruer(ledger store.AccrualLedger, clock adapter.Clock) Accruer {
	return &accruer{ledger: ledger, clock: clock}
}

// Accrue applies the daily reward if the accrual boundary has been crossed
func (a *accruer) Accrue(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*AccrualResult, error) {
	now := a.clock.Now()
	rate := DailyRate(snapshot)

	entry, err := a.ledger.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		entry, err = a.ledger.Init(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Accrual ledger entry created", logger.User(userID))
		return newResult(entry, rate, 0), nil
	}

	if now.Sub(entry.LastAccrualAt) < domain.ACCRUAL_PERIOD {
		return newResult(entry, rate, 0), nil
	}

	updated, err := a.ledger.CompareAndAccrue(ctx, userID, entry.LastAccrualAt, now, rate, snapshot.Counts())
	if err != nil {
		if !errors.Is(err, domain.ErrAccrualConflict) {
			return nil, err
		}

		// Another request accrued this boundary first
		logger.InfoCtx(ctx, "Accrual already applied concurrently", logger.User(userID))
		current, err := a.ledger.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, fmt.Errorf("%w: entry of %s disappeared", domain.ErrAccrualStore, userID)
		}
		return newResult(current, rate, 0), nil
	}

	logger.InfoCtx(ctx, "Daily reward accrued",
		logger.User(userID),
		zap.Uint64("amount", rate),
		zap.Uint64("claimable_balance", updated.ClaimableBalance))

	return newResult(updated, rate, rate), nil
}

// Defer reads the ledger entry of userID and leaves it untouched
func (a *accruer) Defer(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*AccrualResult, error) {
	rate := DailyRate(snapshot)

	entry, err := a.ledger.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var result *AccrualResult
	if entry == nil {
		result = &AccrualResult{DailyRate: rate}
	} else {
		result = newResult(entry, rate, 0)
	}
	result.Deferred = true

	logger.InfoCtx(ctx, "Daily reward deferred", logger.User(userID), zap.Uint64("partial_rate", rate))
	return result, nil
}

func newResult(entry *schema.AccrualLedger, rate, accrued uint64) *AccrualResult {
	return &AccrualResult{
		ClaimableBalance: entry.ClaimableBalance,
		LastAccrualAt:    entry.LastAccrualAt,
		NextBoundary:     entry.LastAccrualAt.Add(domain.ACCRUAL_PERIOD),
		DailyRate:        rate,
		Accrued:          accrued,
	}
}
