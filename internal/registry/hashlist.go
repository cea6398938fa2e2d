package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
)

// MembershipSets is an immutable snapshot of every collection hashlist.
// A snapshot is never modified after construction; reloads build a new one.
type MembershipSets struct {
	sets     map[domain.CollectionKey]domain.TokenSet
	version  uint64
	loadedAt time.Time
}

// NewMembershipSets builds a snapshot from per-collection token id lists.
// Input slices are copied. Empty ids are skipped.
func NewMembershipSets(lists map[domain.CollectionKey][]string) *MembershipSets {
	sets := make(map[domain.CollectionKey]domain.TokenSet, len(lists))
	for key, ids := range lists {
		set := make(domain.TokenSet, len(ids))
		for _, id := range ids {
			if id == "" {
				continue
			}
			set.Add(id)
		}
		sets[key] = set
	}
	return &MembershipSets{sets: sets, loadedAt: time.Now()}
}

// Contains reports whether tokenID belongs to the collection
func (m *MembershipSets) Contains(key domain.CollectionKey, tokenID string) bool {
	if m == nil {
		return false
	}
	return m.sets[key].Contains(tokenID)
}

// Match returns every collection whose hashlist contains tokenID, in AllCollections order
func (m *MembershipSets) Match(tokenID string) []domain.CollectionKey {
	if m == nil {
		return nil
	}
	var matches []domain.CollectionKey
	for _, key := range m.Collections() {
		if m.sets[key].Contains(tokenID) {
			matches = append(matches, key)
		}
	}
	return matches
}

// Collections returns the collections present in the snapshot.
// Tracked collections come first in AllCollections order.
func (m *MembershipSets) Collections() []domain.CollectionKey {
	if m == nil {
		return nil
	}
	keys := make([]domain.CollectionKey, 0, len(m.sets))
	for _, key := range domain.AllCollections {
		if _, ok := m.sets[key]; ok {
			keys = append(keys, key)
		}
	}
	for key := range m.sets {
		if !domain.IsValidCollection(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Size returns the number of tokens in a collection hashlist
func (m *MembershipSets) Size(key domain.CollectionKey) int {
	if m == nil {
		return 0
	}
	return len(m.sets[key])
}

// Version returns the reload generation of the snapshot, 0 until installed in a registry
func (m *MembershipSets) Version() uint64 {
	if m == nil {
		return 0
	}
	return m.version
}

// LoadedAt returns when the snapshot was built
func (m *MembershipSets) LoadedAt() time.Time {
	if m == nil {
		return time.Time{}
	}
	return m.loadedAt
}

// HashlistLoader reads collection hashlists from their backing definitions
//
//go:generate mockgen -source=hashlist.go -destination=../mocks/hashlist.go -package=mocks -mock_names=HashlistLoader=MockHashlistLoader,HashlistRegistry=MockHashlistRegistry
type HashlistLoader interface {
	// Load returns the token ids of one collection.
	// A missing or corrupt definition yields an empty set and a warning, never an error.
	Load(key domain.CollectionKey) []string

	// LoadAll loads every tracked collection into a new snapshot
	LoadAll() *MembershipSets
}

type hashlistLoader struct {
	fs  adapter.FileSystem
	dir string
}

// NewHashlistLoader creates a loader reading <dir>/<collection_key>.json files,
// each a JSON array of mint addresses
func NewHashlistLoader(fs adapter.FileSystem, dir string) HashlistLoader {
	return &hashlistLoader{fs: fs, dir: dir}
}

// Load reads one collection hashlist
func (l *hashlistLoader) Load(key domain.CollectionKey) []string {
	path := filepath.Join(l.dir, string(key)+".json")

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Hashlist file not found, collection will be empty",
				zap.String("collection", string(key)),
				zap.String("path", path))
		} else {
			logger.Warn("Failed to read hashlist file, collection will be empty",
				zap.String("collection", string(key)),
				zap.String("path", path),
				zap.Error(err))
		}
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		logger.Warn("Failed to parse hashlist file, collection will be empty",
			zap.String("collection", string(key)),
			zap.String("path", path),
			zap.Error(err))
		return []string{}
	}

	return ids
}

// LoadAll loads every tracked collection
func (l *hashlistLoader) LoadAll() *MembershipSets {
	lists := make(map[domain.CollectionKey][]string, len(domain.AllCollections))
	for _, key := range domain.AllCollections {
		lists[key] = l.Load(key)
	}
	return NewMembershipSets(lists)
}

// HashlistRegistry holds the current MembershipSets snapshot.
// Readers never observe a partially reloaded snapshot.
type HashlistRegistry interface {
	// Current returns the snapshot in use; callers keep the pointer for the duration of one operation
	Current() *MembershipSets

	// Reload atomically replaces the snapshot with sets
	Reload(sets *MembershipSets) *MembershipSets

	// ReloadFromDisk reads every hashlist again and swaps the result in
	ReloadFromDisk() *MembershipSets
}

type hashlistRegistry struct {
	loader  HashlistLoader
	current atomic.Pointer[MembershipSets]
	version atomic.Uint64
}

// NewHashlistRegistry loads every hashlist once and returns a registry serving the snapshot
func NewHashlistRegistry(loader HashlistLoader) HashlistRegistry {
	r := &hashlistRegistry{loader: loader}
	r.Reload(loader.LoadAll())
	return r
}

// Current returns the snapshot in use
func (r *hashlistRegistry) Current() *MembershipSets {
	return r.current.Load()
}

// Reload atomically replaces the snapshot
func (r *hashlistRegistry) Reload(sets *MembershipSets) *MembershipSets {
	if sets == nil {
		sets = NewMembershipSets(nil)
	}

	// Each install gets its own version, even when the same snapshot is passed twice
	installed := &MembershipSets{
		sets:     sets.sets,
		loadedAt: sets.loadedAt,
		version:  r.version.Add(1),
	}
	r.current.Store(installed)

	logger.Info("Hashlists loaded",
		zap.Uint64("version", installed.version),
		zap.String("sizes", fmt.Sprint(sizes(installed))))

	return installed
}

// ReloadFromDisk reads every hashlist again and swaps the result in
func (r *hashlistRegistry) ReloadFromDisk() *MembershipSets {
	return r.Reload(r.loader.LoadAll())
}

func sizes(m *MembershipSets) map[domain.CollectionKey]int {
	out := make(map[domain.CollectionKey]int, len(m.sets))
	for key, set := range m.sets {
		out[key] = len(set)
	}
	return out
}
