package cart

import (
	"context"
	"sync"
)

// MemorySnapshotStore keeps snapshots in process memory. Used by tests and
// as a fallback when Redis is not configured (carts then live only as long
// as the process).
type MemorySnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{data: make(map[string][]byte)}
}

func (s *MemorySnapshotStore) Save(_ context.Context, token string, items []LineItem) error {
	data, err := EncodeSnapshot(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = data
	return nil
}

func (s *MemorySnapshotStore) Load(_ context.Context, token string) ([]LineItem, error) {
	s.mu.RLock()
	data, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return DecodeSnapshot(data), nil
}

func (s *MemorySnapshotStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
	return nil
}

// Corrupt overwrites a stored snapshot with raw bytes. Test helper for
// exercising the tolerant load path.
func (s *MemorySnapshotStore) Corrupt(token string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = raw
}
