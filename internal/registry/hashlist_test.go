package registry_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/mocks"
	"github.com/buxdao/holder-bot/internal/registry"
)

func hashlistPath(key domain.CollectionKey) string {
	return filepath.Join("hashlists", string(key)+".json")
}

func TestHashlistLoader_Load(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockFileSystem)
		expected   []string
	}{
		{
			name: "valid hashlist",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.
					EXPECT().
					ReadFile(hashlistPath(domain.CollectionFckedCatz)).
					Return([]byte(`["mintA","mintB"]`), nil)
			},
			expected: []string{"mintA", "mintB"},
		},
		{
			name: "missing file yields empty list",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.
					EXPECT().
					ReadFile(hashlistPath(domain.CollectionFckedCatz)).
					Return(nil, fs.ErrNotExist)
			},
			expected: []string{},
		},
		{
			name: "unreadable file yields empty list",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.
					EXPECT().
					ReadFile(hashlistPath(domain.CollectionFckedCatz)).
					Return(nil, errors.New("permission denied"))
			},
			expected: []string{},
		},
		{
			name: "corrupt file yields empty list",
			setupMocks: func(mockFS *mocks.MockFileSystem) {
				mockFS.
					EXPECT().
					ReadFile(hashlistPath(domain.CollectionFckedCatz)).
					Return([]byte(`{"not":"an array"}`), nil)
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			tt.setupMocks(mockFS)

			loader := registry.NewHashlistLoader(mockFS, "hashlists")
			assert.Equal(t, tt.expected, loader.Load(domain.CollectionFckedCatz))
		})
	}
}

func TestHashlistLoader_LoadAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockFS.EXPECT().ReadFile(gomock.Any()).DoAndReturn(func(name string) ([]byte, error) {
		switch name {
		case hashlistPath(domain.CollectionCelebCatz):
			return []byte(`["celeb1","shared"]`), nil
		case hashlistPath(domain.CollectionMoneyMonsters):
			return []byte(`["mm1","shared",""]`), nil
		default:
			return nil, fs.ErrNotExist
		}
	}).Times(len(domain.AllCollections))

	sets := registry.NewHashlistLoader(mockFS, "hashlists").LoadAll()
	require.NotNil(t, sets)

	assert.Equal(t, 2, sets.Size(domain.CollectionCelebCatz))
	assert.Equal(t, 2, sets.Size(domain.CollectionMoneyMonsters))
	assert.Equal(t, 0, sets.Size(domain.CollectionAIBitbots))
	assert.True(t, sets.Contains(domain.CollectionCelebCatz, "celeb1"))
	assert.False(t, sets.Contains(domain.CollectionCelebCatz, "mm1"))
	assert.Equal(t,
		[]domain.CollectionKey{domain.CollectionCelebCatz, domain.CollectionMoneyMonsters},
		sets.Match("shared"))
	assert.Empty(t, sets.Match("unknown"))
	assert.Len(t, sets.Collections(), len(domain.AllCollections))
}

func TestMembershipSets_NilSafe(t *testing.T) {
	var sets *registry.MembershipSets
	assert.False(t, sets.Contains(domain.CollectionCelebCatz, "x"))
	assert.Nil(t, sets.Match("x"))
	assert.Equal(t, 0, sets.Size(domain.CollectionCelebCatz))
	assert.Equal(t, uint64(0), sets.Version())
}

func TestMembershipSets_CopiesInput(t *testing.T) {
	ids := []string{"a", "b"}
	sets := registry.NewMembershipSets(map[domain.CollectionKey][]string{
		domain.CollectionFckedCatz: ids,
	})
	ids[0] = "z"

	assert.True(t, sets.Contains(domain.CollectionFckedCatz, "a"))
	assert.False(t, sets.Contains(domain.CollectionFckedCatz, "z"))
}

func TestHashlistRegistry_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockHashlistLoader(ctrl)
	mockLoader.EXPECT().LoadAll().Return(registry.NewMembershipSets(map[domain.CollectionKey][]string{
		domain.CollectionCelebCatz: {"old"},
	}))

	reg := registry.NewHashlistRegistry(mockLoader)
	first := reg.Current()
	require.NotNil(t, first)
	assert.Equal(t, uint64(1), first.Version())
	assert.True(t, first.Contains(domain.CollectionCelebCatz, "old"))

	next := registry.NewMembershipSets(map[domain.CollectionKey][]string{
		domain.CollectionCelebCatz: {"new"},
	})
	installed := reg.Reload(next)
	assert.Equal(t, uint64(2), installed.Version())
	assert.Same(t, installed, reg.Current())
	assert.True(t, reg.Current().Contains(domain.CollectionCelebCatz, "new"))

	// A caller holding the previous snapshot keeps a consistent view
	assert.True(t, first.Contains(domain.CollectionCelebCatz, "old"))
	assert.False(t, first.Contains(domain.CollectionCelebCatz, "new"))

	// Same snapshot installed twice gets a new version
	again := reg.Reload(next)
	assert.Equal(t, uint64(3), again.Version())

	// Nil installs an empty snapshot
	empty := reg.Reload(nil)
	assert.Equal(t, uint64(4), empty.Version())
	assert.Empty(t, empty.Match("new"))
}

func TestHashlistRegistry_ReloadFromDisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockHashlistLoader(ctrl)
	gomock.InOrder(
		mockLoader.EXPECT().LoadAll().Return(registry.NewMembershipSets(nil)),
		mockLoader.EXPECT().LoadAll().Return(registry.NewMembershipSets(map[domain.CollectionKey][]string{
			domain.CollectionAIBitbots: {"bot1"},
		})),
	)

	reg := registry.NewHashlistRegistry(mockLoader)
	assert.Empty(t, reg.Current().Match("bot1"))

	reloaded := reg.ReloadFromDisk()
	assert.Equal(t, []domain.CollectionKey{domain.CollectionAIBitbots}, reloaded.Match("bot1"))
	assert.Equal(t, uint64(2), reg.Current().Version())
}

func TestHashlistRegistry_ConcurrentReadersDuringReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockHashlistLoader(ctrl)
	mockLoader.EXPECT().LoadAll().Return(registry.NewMembershipSets(map[domain.CollectionKey][]string{
		domain.CollectionCelebCatz: {"a", "b"},
	}))
	reg := registry.NewHashlistRegistry(mockLoader)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := reg.Current()
				// Every snapshot holds either both tokens or neither
				assert.Equal(t, snap.Contains(domain.CollectionCelebCatz, "a"), snap.Contains(domain.CollectionCelebCatz, "b"))
			}
		}()
	}
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			reg.Reload(registry.NewMembershipSets(nil))
		} else {
			reg.Reload(registry.NewMembershipSets(map[domain.CollectionKey][]string{
				domain.CollectionCelebCatz: {"a", "b"},
			}))
		}
	}
	wg.Wait()
}
