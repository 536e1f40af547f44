package handler

import "net/http"

// SSEHandler runs for the lifetime of an SSE connection. The connection is
// closed when it returns or the client goes away.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case ev := <-events:
//				if err := stream.SendComponent(views.Toast(ev), handler.WithTarget("#toasts")); err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "sse_requires_datastar")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a streaming response running handler.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
