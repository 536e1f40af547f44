package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates a store that sweeps expired sessions every
// cleanupInterval. Zero disables the sweep.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	m := &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go m.cleanupLoop(cleanupInterval)
	}
	return m
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	if s == nil || s.Token == "" {
		return ErrInvalidSession
	}
	m.mu.Lock()
	m.sessions[s.Token] = *s
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expiredAt(m.now()) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, ErrSessionExpired
	}
	return &s, nil
}

func (m *MemoryStore) Extend(_ context.Context, token string, lastActivity, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	s.LastActivityAt = lastActivity
	s.ExpiresAt = expiresAt
	m.sessions[token] = s
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// DeleteExpired drops every expired session.
func (m *MemoryStore) DeleteExpired() {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, s := range m.sessions {
		if s.expiredAt(now) {
			delete(m.sessions, token)
		}
	}
}

// Len reports the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	m.once.Do(func() { close(m.stop) })
	return nil
}

func (m *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.DeleteExpired()
		case <-m.stop:
			return
		}
	}
}
