package toast

import (
	"context"
	"slices"
	"sync"
)

// Storage keeps the set of currently visible toasts per session.
type Storage interface {
	Add(ctx context.Context, t Toast) error
	MarkFading(ctx context.Context, session, id string) (Toast, error)
	Remove(ctx context.Context, session, id string) (Toast, error)
	List(ctx context.Context, session string) ([]Toast, error)
}

// MemoryStorage is an in-memory Storage.
type MemoryStorage struct {
	mu       sync.RWMutex
	sessions map[string][]Toast
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{sessions: make(map[string][]Toast)}
}

func (s *MemoryStorage) Add(_ context.Context, t Toast) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[t.Session] = append(s.sessions[t.Session], t)
	return nil
}

func (s *MemoryStorage) MarkFading(_ context.Context, session, id string) (Toast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.sessions[session]
	i := slices.IndexFunc(list, func(t Toast) bool { return t.ID == id })
	if i < 0 {
		return Toast{}, ErrToastNotFound
	}
	list[i].Fading = true
	return list[i], nil
}

func (s *MemoryStorage) Remove(_ context.Context, session, id string) (Toast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.sessions[session]
	i := slices.IndexFunc(list, func(t Toast) bool { return t.ID == id })
	if i < 0 {
		return Toast{}, ErrToastNotFound
	}
	removed := list[i]
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(s.sessions, session)
	} else {
		s.sessions[session] = list
	}
	return removed, nil
}

// List returns a copy of the visible toasts in creation order.
func (s *MemoryStorage) List(_ context.Context, session string) ([]Toast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sessions[session]), nil
}
