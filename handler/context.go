package handler

import (
	"context"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Context is the request context plus the request, its writer and, for
// DataStar requests, the SSE stream.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// SSE is nil for requests that are not DataStar requests.
	SSE() *datastar.ServerSentEventGenerator
}

func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &requestContext{Context: r.Context(), w: w, r: r}
}

type requestContext struct {
	context.Context
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *requestContext) Request() *http.Request { return c.r }
func (c *requestContext) ResponseWriter() http.ResponseWriter { return c.w }

// SSE opens the stream on first use, so a handler can still answer with a
// plain status before sending any event.
func (c *requestContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = NewSSE(c.w, c.r)
	}
	return c.sse
}
