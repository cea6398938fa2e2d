package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// UserID is the Discord user snowflake of a holder
type UserID string

// WalletAddress is a Solana public key in base58 form. It is case-sensitive and never normalized.
type WalletAddress string

// RoleID is a Discord role snowflake
type RoleID string

// CollectionKey identifies a tracked collection or sub-collection
type CollectionKey string

const (
	CollectionFckedCatz       CollectionKey = "fcked_catz"
	CollectionCelebCatz       CollectionKey = "celebcatz"
	CollectionMoneyMonsters   CollectionKey = "money_monsters"
	CollectionMoneyMonsters3D CollectionKey = "money_monsters_3d"
	CollectionAIBitbots       CollectionKey = "ai_bitbots"
	CollectionAIWarriors      CollectionKey = "ai_warriors"
	CollectionAISquirrels     CollectionKey = "ai_squirrels"
	CollectionAIEnergyApes    CollectionKey = "ai_energy_apes"
	CollectionRjctdBots       CollectionKey = "rjctd_bots"
	CollectionCandyBots       CollectionKey = "candy_bots"
	CollectionDoodleBots      CollectionKey = "doodle_bots"
)

// AllCollections lists every tracked collection in display order
var AllCollections = []CollectionKey{
	CollectionFckedCatz,
	CollectionCelebCatz,
	CollectionMoneyMonsters,
	CollectionMoneyMonsters3D,
	CollectionAIBitbots,
	CollectionAIWarriors,
	CollectionAISquirrels,
	CollectionAIEnergyApes,
	CollectionRjctdBots,
	CollectionCandyBots,
	CollectionDoodleBots,
}

// IsValidCollection checks if a collection key is one of the tracked collections
func IsValidCollection(key CollectionKey) bool {
	for _, k := range AllCollections {
		if k == key {
			return true
		}
	}
	return false
}

// TokenAccount is a single (mint, amount) pair observed in a wallet
type TokenAccount struct {
	Mint     string `json:"mint"`
	Owner    string `json:"owner"`
	Amount   uint64 `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

// TokenAccountSnapshot is the result of one chain query for one wallet
type TokenAccountSnapshot struct {
	Wallet   WalletAddress  `json:"wallet"`
	Accounts []TokenAccount `json:"accounts"`
}

// TokenSet is a set of token identifiers (mint addresses)
type TokenSet map[string]struct{}

// NewTokenSet creates a token set from the given ids
func NewTokenSet(ids ...string) TokenSet {
	s := make(TokenSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set
func (s TokenSet) Add(id string) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set
func (s TokenSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order
func (s TokenSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HoldingsSnapshot is the canonical per-user union of holdings across all linked wallets.
// It is recomputed from scratch on every aggregation and never cached.
type HoldingsSnapshot struct {
	PerCollection   map[CollectionKey]TokenSet `json:"per_collection"`
	FungibleBalance uint64                     `json:"fungible_balance"`
}

// NewHoldingsSnapshot returns an all-empty snapshot
func NewHoldingsSnapshot() *HoldingsSnapshot {
	return &HoldingsSnapshot{
		PerCollection: make(map[CollectionKey]TokenSet),
	}
}

// Count returns the number of distinct tokens held in a collection
func (h *HoldingsSnapshot) Count(key CollectionKey) int {
	if h == nil {
		return 0
	}
	return len(h.PerCollection[key])
}

// Counts returns the per-collection sizes, omitting empty collections
func (h *HoldingsSnapshot) Counts() map[CollectionKey]int {
	counts := make(map[CollectionKey]int)
	if h == nil {
		return counts
	}
	for key, set := range h.PerCollection {
		if len(set) > 0 {
			counts[key] = len(set)
		}
	}
	return counts
}

// AddToken records a token under a collection. Re-adding the same token is a no-op.
func (h *HoldingsSnapshot) AddToken(key CollectionKey, tokenID string) {
	set, ok := h.PerCollection[key]
	if !ok {
		set = make(TokenSet)
		h.PerCollection[key] = set
	}
	set.Add(tokenID)
}

// Merge unions other into h and adds its fungible balance
func (h *HoldingsSnapshot) Merge(other *HoldingsSnapshot) {
	if other == nil {
		return
	}
	for key, set := range other.PerCollection {
		for id := range set {
			h.AddToken(key, id)
		}
	}
	h.FungibleBalance += other.FungibleBalance
}

// RoleSet is a set of Discord role ids
type RoleSet map[RoleID]struct{}

// NewRoleSet creates a role set from the given ids, skipping empty ids
func NewRoleSet(ids ...RoleID) RoleSet {
	s := make(RoleSet, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Add inserts id into the set. Empty ids are ignored.
func (s RoleSet) Add(id RoleID) {
	if id == "" {
		return
	}
	s[id] = struct{}{}
}

// Contains reports whether id is in the set
func (s RoleSet) Contains(id RoleID) bool {
	_, ok := s[id]
	return ok
}

// Minus returns the roles in s that are not in other
func (s RoleSet) Minus(other RoleSet) RoleSet {
	out := make(RoleSet)
	for id := range s {
		if !other.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Intersect returns the roles present in both sets
func (s RoleSet) Intersect(other RoleSet) RoleSet {
	out := make(RoleSet)
	for id := range s {
		if other.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Sorted returns the role ids in lexical order
func (s RoleSet) Sorted() []RoleID {
	ids := make([]RoleID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// String returns a comma separated list of the sorted role ids
func (s RoleSet) String() string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

// MarshalJSON encodes the set as a sorted array
func (s RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of role ids
func (s *RoleSet) UnmarshalJSON(data []byte) error {
	var ids []RoleID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewRoleSet(ids...)
	return nil
}
