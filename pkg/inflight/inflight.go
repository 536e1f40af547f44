package inflight

import (
	"context"
	"sync"
)

// Guard admits at most one holder per key.
type Guard interface {
	// Acquire claims key or fails with ErrInProgress when it is already held.
	Acquire(ctx context.Context, key string) error
	// Release frees key. Releasing a key that is not held is a no-op.
	Release(ctx context.Context, key string) error
}

// MemoryGuard is a process-local Guard.
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return ErrInProgress
	}
	g.held[key] = struct{}{}
	return nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	return nil
}

// Held reports whether key is currently claimed.
func (g *MemoryGuard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.held[key]
	return ok
}
