package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the channel messages arrive on. It is closed when the
	// subscription ends.
	Receive(ctx context.Context) <-chan Message[T]
	// Close ends the subscription. Idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers.
// Slow consumers lose messages instead of blocking the sender.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber that lives until ctx is done or Close is called.
	Subscribe(ctx context.Context) Subscriber[T]
	Broadcast(ctx context.Context, msg Message[T]) error
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan Message[T], bufferSize)}
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send reports false when the subscriber is closed or its buffer is full.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
