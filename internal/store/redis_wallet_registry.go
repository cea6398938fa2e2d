package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
)

const scanCount = 500

type redisWalletRegistry struct {
	client    adapter.RedisClient
	keyPrefix string
}

// NewRedisWalletRegistry creates a wallet registry keeping one Redis set per user under keyPrefix
func NewRedisWalletRegistry(client adapter.RedisClient, keyPrefix string) WalletRegistry {
	return &redisWalletRegistry{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *redisWalletRegistry) key(userID domain.UserID) string {
	return r.keyPrefix + string(userID)
}

// Wallets returns the wallets linked to userID
func (r *redisWalletRegistry) Wallets(ctx context.Context, userID domain.UserID) ([]domain.WalletAddress, error) {
	members, err := r.client.SMembers(ctx, r.key(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list wallets of %s: %w", domain.ErrRegistry, userID, err)
	}

	sort.Strings(members)
	wallets := make([]domain.WalletAddress, 0, len(members))
	for _, m := range members {
		wallets = append(wallets, domain.WalletAddress(m))
	}
	return wallets, nil
}

// AddWallet links wallet to userID
func (r *redisWalletRegistry) AddWallet(ctx context.Context, userID domain.UserID, wallet domain.WalletAddress) (bool, error) {
	added, err := r.client.SAdd(ctx, r.key(userID), string(wallet))
	if err != nil {
		return false, fmt.Errorf("%w: failed to add wallet for %s: %w", domain.ErrRegistry, userID, err)
	}
	return added > 0, nil
}

// RemoveWallet unlinks wallet from userID
func (r *redisWalletRegistry) RemoveWallet(ctx context.Context, userID domain.UserID, wallet domain.WalletAddress) (bool, error) {
	removed, err := r.client.SRem(ctx, r.key(userID), string(wallet))
	if err != nil {
		return false, fmt.Errorf("%w: failed to remove wallet for %s: %w", domain.ErrRegistry, userID, err)
	}
	return removed > 0, nil
}

// Users returns every user with at least one linked wallet, in lexical order
func (r *redisWalletRegistry) Users(ctx context.Context) ([]domain.UserID, error) {
	keys, err := r.client.ScanKeys(ctx, r.keyPrefix+"*", scanCount)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan users: %w", domain.ErrRegistry, err)
	}

	seen := make(map[string]struct{}, len(keys))
	users := make([]domain.UserID, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, r.keyPrefix)
		if id == "" {
			continue
		}
		// SCAN may return a key more than once
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		users = append(users, domain.UserID(id))
	}

	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	return users, nil
}
