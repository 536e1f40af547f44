package toast

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/contactkit/pkg/broadcast"
	"github.com/dmitrymomot/contactkit/pkg/cache"
	"github.com/dmitrymomot/contactkit/pkg/logger"
)

// Deliverer pushes toast events to connected clients.
type Deliverer interface {
	Deliver(ctx context.Context, ev Event) error
}

// NoOpDeliverer discards events.
type NoOpDeliverer struct{}

func (NoOpDeliverer) Deliver(context.Context, Event) error { return nil }

// BroadcastDeliverer fans events out to per-session subscribers.
// Sessions are kept in an LRU cache; evicted sessions get their streams closed.
type BroadcastDeliverer struct {
	sessions   *cache.LRUCache[string, *broadcast.MemoryBroadcaster[Event]]
	bufferSize int
	logger     *slog.Logger
}

// BroadcastOption configures a BroadcastDeliverer.
type BroadcastOption func(*broadcastConfig)

type broadcastConfig struct {
	maxSessions int
	logger      *slog.Logger
}

// WithMaxSessions bounds the number of sessions with live broadcasters. Default 10000.
func WithMaxSessions(n int) BroadcastOption {
	return func(c *broadcastConfig) {
		if n > 0 {
			c.maxSessions = n
		}
	}
}

func WithBroadcastLogger(l *slog.Logger) BroadcastOption {
	return func(c *broadcastConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewBroadcastDeliverer(bufferSize int, opts ...BroadcastOption) *BroadcastDeliverer {
	cfg := broadcastConfig{maxSessions: 10000, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &BroadcastDeliverer{
		sessions:   cache.NewLRUCache[string, *broadcast.MemoryBroadcaster[Event]](cfg.maxSessions),
		bufferSize: bufferSize,
		logger:     cfg.logger,
	}
	d.sessions.SetEvictCallback(func(session string, b *broadcast.MemoryBroadcaster[Event]) {
		if err := b.Close(); err != nil {
			d.logger.LogAttrs(context.Background(), slog.LevelError, "failed to close evicted toast stream",
				logger.Session(session),
				logger.Error(err),
			)
		}
	})
	return d
}

func (d *BroadcastDeliverer) broadcaster(session string) *broadcast.MemoryBroadcaster[Event] {
	return d.sessions.GetOrCreate(session, func() *broadcast.MemoryBroadcaster[Event] {
		return broadcast.NewMemoryBroadcaster[Event](d.bufferSize)
	})
}

func (d *BroadcastDeliverer) Deliver(ctx context.Context, ev Event) error {
	return d.broadcaster(ev.Toast.Session).Broadcast(ctx, broadcast.Message[Event]{Data: ev})
}

// Subscribe streams events of one session until ctx is done.
func (d *BroadcastDeliverer) Subscribe(ctx context.Context, session string) broadcast.Subscriber[Event] {
	return d.broadcaster(session).Subscribe(ctx)
}

// Close closes every session stream.
func (d *BroadcastDeliverer) Close() error {
	d.sessions.Clear()
	return nil
}
