package contact

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/contactkit/pkg/toast"
)

// Surface is the UI the pipeline drives. Errors returned by a surface are
// logged and never change the outcome of a submission.
type Surface interface {
	SetSubmitting(ctx context.Context, submitting bool) error
	FlagFields(ctx context.Context, fields []string) error
	ResetForm(ctx context.Context) error
	CloseModal(ctx context.Context) error
	OpenMailto(ctx context.Context, uri string) error
}

// Notifier shows transient messages to a session.
type Notifier interface {
	Notify(ctx context.Context, session, message string, level toast.Level) error
}

// NopSurface ignores every call.
type NopSurface struct{}

func (NopSurface) SetSubmitting(context.Context, bool) error { return nil }
func (NopSurface) FlagFields(context.Context, []string) error { return nil }
func (NopSurface) ResetForm(context.Context) error { return nil }
func (NopSurface) CloseModal(context.Context) error { return nil }
func (NopSurface) OpenMailto(context.Context, string) error { return nil }

// Recorder is a Surface that remembers what it was told.
// It backs clients that read the result after the submission settled.
type Recorder struct {
	mu         sync.Mutex
	submitting bool
	flagged    []string
	resets     int
	closed     bool
	mailto     string
	opens      int
}

// RecorderState is a snapshot of a Recorder.
type RecorderState struct {
	Submitting  bool     `json:"submitting"`
	Flagged     []string `json:"flagged,omitempty"`
	Resets      int      `json:"resets"`
	ModalClosed bool     `json:"modal_closed"`
	Mailto      string   `json:"mailto,omitempty"`
	MailtoOpens int      `json:"-"`
}

func (r *Recorder) SetSubmitting(_ context.Context, submitting bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitting = submitting
	return nil
}

func (r *Recorder) FlagFields(_ context.Context, fields []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flagged = append(r.flagged, fields...)
	return nil
}

func (r *Recorder) ResetForm(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
	return nil
}

func (r *Recorder) CloseModal(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *Recorder) OpenMailto(_ context.Context, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mailto = uri
	r.opens++
	return nil
}

// State returns a copy of everything recorded so far.
func (r *Recorder) State() RecorderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RecorderState{
		Submitting:  r.submitting,
		Flagged:     slices.Clone(r.flagged),
		Resets:      r.resets,
		ModalClosed: r.closed,
		Mailto:      r.mailto,
		MailtoOpens: r.opens,
	}
}
