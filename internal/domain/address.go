package domain

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// ParseWalletAddress validates a base58 Solana public key and returns it unchanged.
// No case folding or trimming is applied.
func ParseWalletAddress(s string) (WalletAddress, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidAddress, s, err)
	}

	if len(decoded) != SOLANA_PUBLIC_KEY_LENGTH {
		return "", fmt.Errorf("%w: %s decodes to %d bytes", ErrInvalidAddress, s, len(decoded))
	}

	return WalletAddress(s), nil
}

// Valid checks if the address is a valid Solana public key
func (w WalletAddress) Valid() bool {
	_, err := ParseWalletAddress(string(w))
	return err == nil
}
