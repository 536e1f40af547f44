package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector of the element the component patches.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch creates a TemplPatch for TemplMulti.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	status  int
	patches []TemplPatch
}

// Render sends one SSE patch per component for DataStar requests and
// concatenated HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders a component. DataStar requests receive it as an element patch.
//
//	return handler.Templ(views.Modal(params),
//		handler.WithTarget("#modal-root"),
//		handler.WithPatchMode(handler.PatchInner),
//	)
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplWithStatus is Templ with a status code for plain HTML responses.
func TemplWithStatus(status int, component templ.Component) Response {
	return templResponse{status: status, patches: []TemplPatch{Patch(component)}}
}

// TemplMulti renders several components, each with its own patch options.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}
