package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetReturnsSameStoreForToken(t *testing.T) {
	manager := NewManager(NewMemorySnapshotStore())

	token := manager.NewToken()
	store1 := manager.Get(token)
	store2 := manager.Get(token)

	assert.Same(t, store1, store2)
	assert.Equal(t, 1, manager.Size())
}

func TestManager_TokensAreUnique(t *testing.T) {
	manager := NewManager(NewMemorySnapshotStore())

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := manager.NewToken()
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestManager_RehydratesAfterEviction(t *testing.T) {
	snapshots := NewMemorySnapshotStore()
	manager := NewManager(snapshots)

	token := manager.NewToken()
	store := manager.Get(token)
	require.NoError(t, store.AddItem(ProductRef{ID: "p1", Name: "Sèche-cheveux", UnitPrice: 4500}, 2))

	evicted := manager.EvictIdle(0)
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 0, manager.Size())

	// The guest comes back: a fresh store hydrates from the snapshot
	rehydrated := manager.Get(token)
	assert.NotSame(t, store, rehydrated)
	assert.Equal(t, 2, rehydrated.TotalItems())
	assert.Equal(t, 9000.0, rehydrated.TotalPrice())
}

func TestManager_EvictIdleKeepsRecentStores(t *testing.T) {
	manager := NewManager(NewMemorySnapshotStore())

	manager.Get(manager.NewToken())
	manager.Get(manager.NewToken())

	evicted := manager.EvictIdle(time.Hour)
	assert.Equal(t, 0, evicted)
	assert.Equal(t, 2, manager.Size())
}
