package store

import (
	"context"
	"time"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/store/schema"
)

// WalletRegistry stores the wallets linked to each user.
// Each user is an independent set; no cross-user transactions are used.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=WalletRegistry=MockWalletRegistry,AccrualLedger=MockAccrualLedger
type WalletRegistry interface {
	// Wallets returns the wallets linked to userID in lexical order, empty when none
	Wallets(ctx context.Context, userID domain.UserID) ([]domain.WalletAddress, error)
	// AddWallet links wallet to userID. Linking an already linked wallet is a no-op and reports added=false.
	AddWallet(ctx context.Context, userID domain.UserID, wallet domain.WalletAddress) (bool, error)
	// RemoveWallet unlinks wallet from userID and reports whether it was linked
	RemoveWallet(ctx context.Context, userID domain.UserID, wallet domain.WalletAddress) (bool, error)
	// Users returns every user with at least one linked wallet
	Users(ctx context.Context) ([]domain.UserID, error)
}

// AccrualLedger persists the daily reward accrual state of each user
type AccrualLedger interface {
	// Get returns the ledger entry of userID, nil when absent
	Get(ctx context.Context, userID domain.UserID) (*schema.AccrualLedger, error)
	// Init creates the entry with a zero balance if absent and returns the stored entry
	Init(ctx context.Context, userID domain.UserID, now time.Time) (*schema.AccrualLedger, error)
	// CompareAndAccrue adds amount to the balance and moves the timestamp to now,
	// only if the stored timestamp still equals expectedLast. Returns domain.ErrAccrualConflict otherwise.
	CompareAndAccrue(ctx context.Context, userID domain.UserID, expectedLast, now time.Time, amount uint64, holdings map[domain.CollectionKey]int) (*schema.AccrualLedger, error)
}
