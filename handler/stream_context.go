package handler

import (
	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming helpers.
type StreamContext interface {
	Context

	// SendComponent patches a templ component into the page.
	SendComponent(component templ.Component, opts ...TemplOption) error
	// SendSignals merges signals into the page state.
	SendSignals(signals map[string]any) error
	// Remove deletes the elements matching selector.
	Remove(selector string) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	return PatchSignals(c.sse, signals)
}

func (c *streamContext) Remove(selector string) error {
	return RemoveElement(c.sse, selector)
}
