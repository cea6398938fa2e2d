package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/mocks"
	"github.com/buxdao/holder-bot/internal/store"
)

const (
	walletA = domain.WalletAddress("So11111111111111111111111111111111111111112")
	walletB = domain.WalletAddress("Vote111111111111111111111111111111111111111")
)

func newMiniredisRegistry(t *testing.T) (store.WalletRegistry, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := adapter.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedisWalletRegistry(client, "wallets:"), mr
}

func TestRedisWalletRegistry_AddAndList(t *testing.T) {
	ctx := context.Background()
	registry, mr := newMiniredisRegistry(t)

	wallets, err := registry.Wallets(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, wallets)

	added, err := registry.AddWallet(ctx, "user-1", walletB)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = registry.AddWallet(ctx, "user-1", walletA)
	require.NoError(t, err)
	assert.True(t, added)

	// Duplicate link is a no-op
	added, err = registry.AddWallet(ctx, "user-1", walletA)
	require.NoError(t, err)
	assert.False(t, added)

	wallets, err = registry.Wallets(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.WalletAddress{walletA, walletB}, wallets)

	members, err := mr.Members("wallets:user-1")
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestRedisWalletRegistry_Remove(t *testing.T) {
	ctx := context.Background()
	registry, _ := newMiniredisRegistry(t)

	_, err := registry.AddWallet(ctx, "user-1", walletA)
	require.NoError(t, err)

	removed, err := registry.RemoveWallet(ctx, "user-1", walletA)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = registry.RemoveWallet(ctx, "user-1", walletA)
	require.NoError(t, err)
	assert.False(t, removed)

	wallets, err := registry.Wallets(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, wallets)
}

func TestRedisWalletRegistry_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	registry, _ := newMiniredisRegistry(t)

	_, err := registry.AddWallet(ctx, "user-1", "AbC")
	require.NoError(t, err)
	added, err := registry.AddWallet(ctx, "user-1", "abc")
	require.NoError(t, err)
	assert.True(t, added)

	wallets, err := registry.Wallets(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, wallets, 2)
}

func TestRedisWalletRegistry_Users(t *testing.T) {
	ctx := context.Background()
	registry, mr := newMiniredisRegistry(t)

	_, err := registry.AddWallet(ctx, "user-2", walletA)
	require.NoError(t, err)
	_, err = registry.AddWallet(ctx, "user-1", walletB)
	require.NoError(t, err)
	_, err = mr.SetAdd("other:user-3", string(walletA))
	require.NoError(t, err)

	users, err := registry.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.UserID{"user-1", "user-2"}, users)

	// Removing the last wallet drops the user
	_, err = registry.RemoveWallet(ctx, "user-2", walletA)
	require.NoError(t, err)
	users, err = registry.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.UserID{"user-1"}, users)
}

func TestRedisWalletRegistry_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	registry, mr := newMiniredisRegistry(t)
	mr.Close()

	_, err := registry.Wallets(ctx, "user-1")
	assert.ErrorIs(t, err, domain.ErrRegistry)

	_, err = registry.AddWallet(ctx, "user-1", walletA)
	assert.ErrorIs(t, err, domain.ErrRegistry)

	_, err = registry.RemoveWallet(ctx, "user-1", walletA)
	assert.ErrorIs(t, err, domain.ErrRegistry)

	_, err = registry.Users(ctx)
	assert.ErrorIs(t, err, domain.ErrRegistry)
}

func TestRedisWalletRegistry_ScanDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRedis := mocks.NewMockRedisClient(ctrl)
	mockRedis.EXPECT().
		ScanKeys(gomock.Any(), "wallets:*", int64(500)).
		Return([]string{"wallets:b", "wallets:a", "wallets:b", "wallets:"}, nil)

	users, err := store.NewRedisWalletRegistry(mockRedis, "wallets:").Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.UserID{"a", "b"}, users)
}

func TestRedisWalletRegistry_MembersError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRedis := mocks.NewMockRedisClient(ctrl)
	mockRedis.EXPECT().SMembers(gomock.Any(), "wallets:user-1").Return(nil, errors.New("READONLY"))

	_, err := store.NewRedisWalletRegistry(mockRedis, "wallets:").Wallets(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrRegistry)
	assert.Contains(t, err.Error(), "READONLY")
}
