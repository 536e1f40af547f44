package handler

import "net/http"

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	if e.status != 0 {
		w.WriteHeader(e.status)
	}
	return nil
}

// Empty answers with 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus answers with status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

// Streamed is returned by handlers that already wrote their answer through
// Context.SSE. It writes nothing.
func Streamed() Response {
	return emptyResponse{}
}
