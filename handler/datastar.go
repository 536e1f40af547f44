package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// Patch mode aliases
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar checks if the request is a DataStar request.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// WantsJSON reports whether the client asked for a JSON answer.
func WantsJSON(r *http.Request) bool {
	if IsDataStar(r) {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

// PatchSignals merges signals into the page state of a DataStar client.
func PatchSignals(sse *datastar.ServerSentEventGenerator, signals map[string]any) error {
	if sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}

var nothing = templ.ComponentFunc(func(context.Context, io.Writer) error { return nil })

// RemoveElement deletes the elements matching selector on a DataStar client.
func RemoveElement(sse *datastar.ServerSentEventGenerator, selector string) error {
	if sse == nil {
		return ErrSSENotInitialized
	}
	return sse.PatchElementTempl(nothing, WithTarget(selector), WithPatchMode(PatchRemove))
}
