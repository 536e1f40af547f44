package toast

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contactkit/pkg/logger"
)

// AfterFunc runs fn once d has elapsed.
type AfterFunc func(d time.Duration, fn func())

// Manager creates toasts and drives each one through shown, fading and removed.
// Every toast is independent: no queue, no dedup, no early dismissal.
type Manager struct {
	storage   Storage
	deliverer Deliverer
	logger    *slog.Logger
	display   time.Duration
	fade      time.Duration
	after     AfterFunc
	now       func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTimings overrides display and fade durations. Non-positive values keep the defaults.
func WithTimings(display, fade time.Duration) ManagerOption {
	return func(m *Manager) {
		if display > 0 {
			m.display = display
		}
		if fade > 0 {
			m.fade = fade
		}
	}
}

// WithAfterFunc replaces the timer used to schedule fading and removal.
func WithAfterFunc(fn AfterFunc) ManagerOption {
	return func(m *Manager) {
		if fn != nil {
			m.after = fn
		}
	}
}

func NewManager(storage Storage, deliverer Deliverer, opts ...ManagerOption) *Manager {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	if deliverer == nil {
		deliverer = NoOpDeliverer{}
	}

	m := &Manager{
		storage:   storage,
		deliverer: deliverer,
		logger:    slog.Default(),
		display:   DefaultDisplayTime,
		fade:      DefaultFadeTime,
		after:     func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Lifetime is how long a toast stays in the visible set.
func (m *Manager) Lifetime() time.Duration {
	return m.display + m.fade
}

// Show adds a toast to the session's visible set and schedules its removal.
func (m *Manager) Show(ctx context.Context, session, message string, level Level) (Toast, error) {
	if session == "" {
		return Toast{}, ErrEmptySession
	}
	if !level.Valid() {
		return Toast{}, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	if strings.TrimSpace(message) == "" {
		return Toast{}, ErrEmptyMessage
	}

	t := Toast{
		ID:        uuid.NewString(),
		Session:   session,
		Level:     level,
		Message:   message,
		CreatedAt: m.now(),
	}
	if err := m.storage.Add(ctx, t); err != nil {
		return Toast{}, fmt.Errorf("failed to store toast: %w", err)
	}

	// Timers outlive the caller's request.
	bg := context.WithoutCancel(ctx)
	m.publish(bg, PhaseShown, t)
	m.after(m.display, func() {
		faded, err := m.storage.MarkFading(bg, session, t.ID)
		if err != nil {
			m.logger.LogAttrs(bg, slog.LevelWarn, "toast vanished before fading",
				slog.String("toast_id", t.ID), logger.Error(err))
			return
		}
		m.publish(bg, PhaseFading, faded)

		m.after(m.fade, func() {
			removed, err := m.storage.Remove(bg, session, t.ID)
			if err != nil {
				m.logger.LogAttrs(bg, slog.LevelWarn, "toast vanished before removal",
					slog.String("toast_id", t.ID), logger.Error(err))
				return
			}
			m.publish(bg, PhaseRemoved, removed)
		})
	})

	return t, nil
}

// Notify is Show without the created toast.
func (m *Manager) Notify(ctx context.Context, session, message string, level Level) error {
	_, err := m.Show(ctx, session, message, level)
	return err
}

// Visible lists the session's toasts that have not been removed yet.
func (m *Manager) Visible(ctx context.Context, session string) ([]Toast, error) {
	return m.storage.List(ctx, session)
}

// publish is best effort; the toast lifecycle does not depend on delivery.
func (m *Manager) publish(ctx context.Context, phase Phase, t Toast) {
	if err := m.deliverer.Deliver(ctx, Event{Phase: phase, Toast: t}); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "failed to deliver toast event",
			slog.String("toast_id", t.ID),
			slog.String("phase", string(phase)),
			logger.Session(t.Session),
			logger.Error(err),
		)
	}
}
