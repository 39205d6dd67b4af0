package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
)

// Manager owns the live cart stores, one per guest token. Stores are
// hydrated lazily from the snapshot store on first touch and evicted from
// memory when idle; the persisted snapshot is what survives.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*managedStore
	snapshots SnapshotStore
}

type managedStore struct {
	store      *Store
	lastAccess time.Time
}

func NewManager(snapshots SnapshotStore) *Manager {
	return &Manager{
		stores:    make(map[string]*managedStore),
		snapshots: snapshots,
	}
}

// NewToken mints a fresh guest cart token
func (m *Manager) NewToken() string {
	return uuid.New().String()
}

// Get returns the cart store for a token, hydrating it from its persisted
// snapshot on first access
func (m *Manager) Get(token string) *Store {
	m.mu.Lock()
	if ms, ok := m.stores[token]; ok {
		ms.lastAccess = time.Now()
		m.mu.Unlock()
		return ms.store
	}
	m.mu.Unlock()

	// Hydration reads the snapshot store; keep it outside the manager lock
	store := NewStore(token, m.snapshots)

	m.mu.Lock()
	defer m.mu.Unlock()
	if ms, ok := m.stores[token]; ok {
		// Another request hydrated the same token first
		ms.lastAccess = time.Now()
		return ms.store
	}
	m.stores[token] = &managedStore{store: store, lastAccess: time.Now()}
	return store
}

// EvictIdle drops in-memory stores untouched for longer than maxIdle.
// Their snapshots remain in the snapshot store, so a returning guest
// rehydrates transparently.
func (m *Manager) EvictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for token, ms := range m.stores {
		if ms.lastAccess.Before(cutoff) {
			delete(m.stores, token)
			evicted++
		}
	}

	if evicted > 0 {
		logger.Info("Evicted idle cart stores", map[string]interface{}{
			"evicted":   evicted,
			"remaining": len(m.stores),
		})
	}
	return evicted
}

// Size returns the number of live in-memory stores
func (m *Manager) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}
