package roles

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/config"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
)

// WhaleThresholds is the per-collection token count granting the whale role.
// Collections without an entry have no whale tier.
var WhaleThresholds = map[domain.CollectionKey]int{
	domain.CollectionFckedCatz:       25,
	domain.CollectionMoneyMonsters:   25,
	domain.CollectionMoneyMonsters3D: 25,
	domain.CollectionAIBitbots:       10,
}

// CollectionRoles are the roles granted for one collection
type CollectionRoles struct {
	BaseRoleID  domain.RoleID
	WhaleRoleID domain.RoleID
	// WhaleThreshold of 0 disables the whale role
	WhaleThreshold int
}

// Tier grants RoleID to balances of at least Threshold whole tokens
type Tier struct {
	Threshold uint64
	RoleID    domain.RoleID
}

// Policy maps holdings to the roles the bot manages
type Policy struct {
	Collections map[domain.CollectionKey]CollectionRoles
	Tiers       []Tier
	// Decimals converts the fungible balance from atomic units to whole tokens
	Decimals int
}

// NewPolicy builds the policy from the role configuration
func NewPolicy(rolesCfg config.RolesConfig, decimals int) (*Policy, error) {
	policy := &Policy{
		Collections: make(map[domain.CollectionKey]CollectionRoles, len(rolesCfg.Collections)),
		Decimals:    decimals,
	}

	for name, roles := range rolesCfg.Collections {
		key := domain.CollectionKey(name)
		if !domain.IsValidCollection(key) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCollection, name)
		}

		threshold := WhaleThresholds[key]
		if roles.Whale != "" && threshold == 0 {
			logger.Warn("Whale role configured for a collection without a whale threshold, ignoring it",
				zap.String("collection", name),
				zap.String("role_id", roles.Whale))
		}

		policy.Collections[key] = CollectionRoles{
			BaseRoleID:     domain.RoleID(roles.Holder),
			WhaleRoleID:    domain.RoleID(roles.Whale),
			WhaleThreshold: threshold,
		}
	}

	for _, tier := range rolesCfg.BuxTiers {
		policy.Tiers = append(policy.Tiers, Tier{
			Threshold: tier.Threshold,
			RoleID:    domain.RoleID(tier.Role),
		})
	}
	sort.Slice(policy.Tiers, func(i, j int) bool { return policy.Tiers[i].Threshold < policy.Tiers[j].Threshold })

	return policy, nil
}

// ManagedRoles returns every role the policy can grant.
// Roles outside this set are never added or removed.
func (p *Policy) ManagedRoles() domain.RoleSet {
	managed := domain.NewRoleSet()
	for _, roles := range p.Collections {
		managed.Add(roles.BaseRoleID)
		if roles.WhaleThreshold > 0 {
			managed.Add(roles.WhaleRoleID)
		}
	}
	for _, tier := range p.Tiers {
		managed.Add(tier.RoleID)
	}
	return managed
}

// WholeTokens converts an atomic fungible balance into whole tokens, rounding down.
// Decimals above 19 overflow; configuration caps them at 18.
func (p *Policy) WholeTokens(balance uint64) uint64 {
	if p.Decimals <= 0 {
		return balance
	}
	scale := uint64(1)
	for i := 0; i < p.Decimals; i++ {
		scale *= 10
	}
	return balance / scale
}

// TargetRoles returns the roles a holder should have.
// Every rule is evaluated independently, so tier roles accumulate as the balance grows.
func (p *Policy) TargetRoles(snapshot *domain.HoldingsSnapshot, balance uint64) domain.RoleSet {
	target := domain.NewRoleSet()

	for key, roles := range p.Collections {
		count := snapshot.Count(key)
		if count == 0 {
			continue
		}
		target.Add(roles.BaseRoleID)
		if roles.WhaleThreshold > 0 && count >= roles.WhaleThreshold {
			target.Add(roles.WhaleRoleID)
		}
	}

	whole := p.WholeTokens(balance)
	for _, tier := range p.Tiers {
		if whole >= tier.Threshold {
			target.Add(tier.RoleID)
		}
	}

	return target
}
