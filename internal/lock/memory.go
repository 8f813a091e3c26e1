package lock

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryStore keeps locks in a process-local map. It backs single-node
// deployments and tests; multi-node deployments use the Postgres store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) TryAcquire(_ context.Context, key, token string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok && e.expiresAt.After(m.now()) {
		return false, nil
	}
	m.entries[key] = memoryEntry{
		token:     token,
		expiresAt: m.now().Add(ttl),
	}
	return true, nil
}

func (m *MemoryStore) Release(_ context.Context, key, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || e.token != token {
		return false, nil
	}
	delete(m.entries, key)
	return true, nil
}
