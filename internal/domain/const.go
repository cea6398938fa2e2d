package domain

import "time"

const (
	// SOLANA_PUBLIC_KEY_LENGTH is the decoded length of a Solana public key
	SOLANA_PUBLIC_KEY_LENGTH = 32

	// BUX_DEFAULT_DECIMALS is the number of decimals of the BUX SPL token
	BUX_DEFAULT_DECIMALS = 9

	// ACCRUAL_PERIOD is the interval after which a new daily reward is accrued
	ACCRUAL_PERIOD = 24 * time.Hour
)
