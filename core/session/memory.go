package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process memory. Suitable for development,
// tests, and single-instance deployments; sessions live until restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Get returns the stored session or the default one for unknown senders.
func (m *MemoryStore) Get(_ context.Context, senderID string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[senderID]; ok {
		return s, nil
	}
	return New(), nil
}

// Put stores the session for the sender.
func (m *MemoryStore) Put(_ context.Context, senderID string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[senderID] = s
	return nil
}
