package contactform

import (
	"context"
	"slices"
	"sync"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/contactkit/handler"
	"github.com/dmitrymomot/contactkit/pkg/contact"
)

// streamSurface drives a DataStar page over the SSE stream of the submit
// request.
type streamSurface struct {
	mu    sync.Mutex
	sse   *datastar.ServerSentEventGenerator
	form  FormParams
	views *Views
}

var _ contact.Surface = (*streamSurface)(nil)

func newStreamSurface(sse *datastar.ServerSentEventGenerator, form FormParams, views *Views) *streamSurface {
	return &streamSurface{sse: sse, form: form, views: views}
}

func (s *streamSurface) signals(values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return handler.PatchSignals(s.sse, map[string]any{s.form.Signal: values})
}

func (s *streamSurface) SetSubmitting(_ context.Context, submitting bool) error {
	return s.signals(map[string]any{"submitting": submitting})
}

func (s *streamSurface) FlagFields(_ context.Context, fields []string) error {
	errs := make(map[string]any, len(s.form.Fields))
	for _, f := range s.form.Fields {
		errs[f.Name] = slices.Contains(fields, f.Name)
	}
	return s.signals(map[string]any{"errors": errs})
}

// ResetForm re-renders the form, which also resets its signals.
func (s *streamSurface) ResetForm(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sse.PatchElementTempl(s.views.Form(s.form))
}

func (s *streamSurface) CloseModal(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return handler.RemoveElement(s.sse, "#"+ModalID)
}

func (s *streamSurface) OpenMailto(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sse.Redirect(uri)
}
