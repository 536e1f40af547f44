package toast_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/toast"
)

// fakeClock runs scheduled callbacks only when Advance moves past their deadline.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Duration
	pending []scheduled
}

type scheduled struct {
	at time.Duration
	fn func()
}

func (c *fakeClock) After(d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, scheduled{at: c.now + d, fn: fn})
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.pending, func(i, j int) bool { return c.pending[i].at < c.pending[j].at })
		if len(c.pending) == 0 || c.pending[0].at > target {
			c.now = target
			c.mu.Unlock()
			return
		}
		next := c.pending[0]
		c.pending = c.pending[1:]
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

type recordingDeliverer struct {
	mu     sync.Mutex
	events []toast.Event
}

func (r *recordingDeliverer) Deliver(_ context.Context, ev toast.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingDeliverer) phases() []toast.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]toast.Phase, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Phase)
	}
	return out
}

func newManager(clock *fakeClock, d toast.Deliverer) *toast.Manager {
	return toast.NewManager(toast.NewMemoryStorage(), d,
		toast.WithAfterFunc(clock.After),
		toast.WithLogger(logger.Discard()),
	)
}

func TestManager_RemovedAfterDisplayPlusFadeAndNotBefore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &fakeClock{}
	rec := &recordingDeliverer{}
	m := newManager(clock, rec)

	shown, err := m.Show(ctx, "s1", "x", toast.LevelError)
	require.NoError(t, err)
	assert.Equal(t, toast.DefaultDisplayTime+toast.DefaultFadeTime, m.Lifetime())

	visible, err := m.Visible(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, shown.ID, visible[0].ID)
	assert.False(t, visible[0].Fading)

	clock.Advance(toast.DefaultDisplayTime - time.Millisecond)
	visible, _ = m.Visible(ctx, "s1")
	require.Len(t, visible, 1)
	assert.False(t, visible[0].Fading)

	clock.Advance(time.Millisecond)
	visible, _ = m.Visible(ctx, "s1")
	require.Len(t, visible, 1, "fading toast is still visible")
	assert.True(t, visible[0].Fading)

	clock.Advance(toast.DefaultFadeTime - time.Millisecond)
	visible, _ = m.Visible(ctx, "s1")
	assert.Len(t, visible, 1)

	clock.Advance(time.Millisecond)
	visible, _ = m.Visible(ctx, "s1")
	assert.Empty(t, visible)

	assert.Equal(t, []toast.Phase{toast.PhaseShown, toast.PhaseFading, toast.PhaseRemoved}, rec.phases())
}

func TestManager_OverlappingToastsAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &fakeClock{}
	m := newManager(clock, nil)

	first, err := m.Show(ctx, "s1", "same", toast.LevelInfo)
	require.NoError(t, err)
	clock.Advance(time.Second)
	second, err := m.Show(ctx, "s1", "same", toast.LevelInfo)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	visible, _ := m.Visible(ctx, "s1")
	assert.Len(t, visible, 2, "no dedup")

	clock.Advance(m.Lifetime() - time.Second)
	visible, _ = m.Visible(ctx, "s1")
	require.Len(t, visible, 1)
	assert.Equal(t, second.ID, visible[0].ID)

	clock.Advance(time.Second)
	visible, _ = m.Visible(ctx, "s1")
	assert.Empty(t, visible)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newManager(&fakeClock{}, nil)

	require.NoError(t, m.Notify(ctx, "a", "hello", toast.LevelSuccess))
	visible, _ := m.Visible(ctx, "b")
	assert.Empty(t, visible)
	visible, _ = m.Visible(ctx, "a")
	assert.Len(t, visible, 1)
}

func TestManager_InvalidInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newManager(&fakeClock{}, nil)

	tests := []struct {
		name    string
		session string
		message string
		level   toast.Level
		wantErr error
	}{
		{"unknown level", "s", "x", toast.Level("warning"), toast.ErrInvalidLevel},
		{"empty message", "s", "  ", toast.LevelInfo, toast.ErrEmptyMessage},
		{"empty session", "", "x", toast.LevelInfo, toast.ErrEmptySession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := m.Show(ctx, tt.session, tt.message, tt.level)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_RealTimers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := toast.NewManager(nil, nil,
		toast.WithTimings(20*time.Millisecond, 10*time.Millisecond),
		toast.WithLogger(logger.Discard()),
	)

	require.NoError(t, m.Notify(ctx, "s", "x", toast.LevelInfo))
	assert.Eventually(t, func() bool {
		v, _ := m.Visible(ctx, "s")
		return len(v) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestLevel(t *testing.T) {
	t.Parallel()

	assert.True(t, toast.LevelInfo.Valid())
	assert.True(t, toast.LevelSuccess.Valid())
	assert.True(t, toast.LevelError.Valid())
	assert.False(t, toast.Level("").Valid())

	assert.Equal(t, "#ef4444", toast.LevelError.Color())
	assert.Equal(t, "#10b981", toast.LevelSuccess.Color())
	assert.Equal(t, "#3b82f6", toast.LevelInfo.Color())
}
