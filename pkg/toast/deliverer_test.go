package toast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/toast"
)

func TestBroadcastDeliverer_StreamsSessionEvents(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := toast.NewBroadcastDeliverer(8, toast.WithBroadcastLogger(logger.Discard()))
	t.Cleanup(func() { _ = d.Close() })

	clock := &fakeClock{}
	m := newManager(clock, d)

	mine := d.Subscribe(ctx, "mine")
	other := d.Subscribe(ctx, "other")

	shown, err := m.Show(ctx, "mine", "Opening your email client...", toast.LevelInfo)
	require.NoError(t, err)
	clock.Advance(m.Lifetime())

	for _, want := range []toast.Phase{toast.PhaseShown, toast.PhaseFading, toast.PhaseRemoved} {
		select {
		case msg := <-mine.Receive(ctx):
			assert.Equal(t, want, msg.Data.Phase)
			assert.Equal(t, shown.ID, msg.Data.Toast.ID)
		case <-time.After(time.Second):
			t.Fatalf("missing %s event", want)
		}
	}

	select {
	case msg := <-other.Receive(ctx):
		t.Fatalf("unexpected event for other session: %+v", msg)
	default:
	}
}

func TestBroadcastDeliverer_EvictionClosesStream(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := toast.NewBroadcastDeliverer(1, toast.WithMaxSessions(1), toast.WithBroadcastLogger(logger.Discard()))
	first := d.Subscribe(ctx, "first")
	_ = d.Subscribe(ctx, "second")

	select {
	case _, ok := <-first.Receive(ctx):
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("evicted stream was not closed")
	}

	require.NoError(t, d.Close())
}
