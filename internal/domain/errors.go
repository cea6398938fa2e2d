package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned when a wallet string is not a valid Solana public key
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrChainQuery is returned when the ledger query service fails
	ErrChainQuery = errors.New("chain query failed")

	// ErrRateLimited is returned when the ledger query service answers with "too many requests"
	ErrRateLimited = errors.New("rate limited")

	// ErrIdentityService is returned when a Discord role read or mutation fails
	ErrIdentityService = errors.New("identity service error")

	// ErrRegistry is returned when the wallet registry store is unavailable
	ErrRegistry = errors.New("wallet registry error")

	// ErrAccrualStore is returned when the accrual ledger store is unavailable
	ErrAccrualStore = errors.New("accrual ledger error")

	// ErrAccrualConflict is returned when a conditional accrual update lost against a concurrent writer
	ErrAccrualConflict = errors.New("accrual ledger entry changed concurrently")

	// ErrWalletAlreadyLinked is returned when linking a wallet the user already registered
	ErrWalletAlreadyLinked = errors.New("wallet already linked")

	// ErrUnknownCollection is returned when a collection key is not one of the tracked collections
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrWalletNotLinked is returned when unlinking a wallet the user never registered
	ErrWalletNotLinked = errors.New("wallet not linked")
)

// ChainQueryError describes a failed ledger query for one wallet
type ChainQueryError struct {
	Wallet     WalletAddress
	StatusCode int
	Err        error
}

func (e *ChainQueryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("chain query for %s failed (status %d): %v", e.Wallet, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("chain query for %s failed: %v", e.Wallet, e.Err)
}

func (e *ChainQueryError) Unwrap() []error {
	errs := []error{ErrChainQuery}
	if e.RateLimited() {
		errs = append(errs, ErrRateLimited)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// RateLimited reports whether the upstream rejected the query with "too many requests"
func (e *ChainQueryError) RateLimited() bool {
	return e.StatusCode == 429
}

// IsRateLimited reports whether err is a retryable rate-limit failure
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
