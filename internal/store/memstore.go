package store

import (
	"sync"

	"haunted-house-be/internal/game"
)

// MemoryStore keeps the last saved snapshot in memory. Useful for tests
// and for running without durability.
type MemoryStore struct {
	mu   sync.RWMutex
	snap game.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap, nil
}

func (m *MemoryStore) Save(snap game.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap
	return nil
}

// Saves reports whether a snapshot has been written.
func (m *MemoryStore) Saves() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.Sessions != nil
}
