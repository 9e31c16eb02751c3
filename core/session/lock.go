package session

import "sync"

// KeyedLock serializes message handling per sender. Sessions are private
// per-sender mutable state; two in-flight messages from the same sender
// would otherwise race on the read-modify-write cycle and lose updates.
// Locks for distinct senders do not contend.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedLock constructs an empty lock set.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for the key and returns the matching unlock.
func (l *KeyedLock) Lock(key string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
