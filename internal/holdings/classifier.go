package holdings

import (
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/registry"
)

// Classifier buckets the token accounts of one wallet into collections and the fungible balance
type Classifier interface {
	Classify(snapshot *domain.TokenAccountSnapshot) *domain.HoldingsSnapshot
}

type classifier struct {
	sets    *registry.MembershipSets
	buxMint string
}

// NewClassifier creates a classifier over a fixed membership snapshot
func NewClassifier(sets *registry.MembershipSets, buxMint string) Classifier {
	return &classifier{sets: sets, buxMint: buxMint}
}

// Classify is pure over its input and the membership snapshot.
// An account with amount 1 is tested against every collection and added to each match.
// The fungible token is summed regardless of magnitude.
func (c *classifier) Classify(snapshot *domain.TokenAccountSnapshot) *domain.HoldingsSnapshot {
	result := domain.NewHoldingsSnapshot()
	if snapshot == nil {
		return result
	}

	for _, account := range snapshot.Accounts {
		if c.buxMint != "" && account.Mint == c.buxMint {
			result.FungibleBalance += account.Amount
			continue
		}
		if account.Amount != 1 {
			continue
		}
		for _, key := range c.sets.Match(account.Mint) {
			result.AddToken(key, account.Mint)
		}
	}

	return result
}
