package binder

import (
	"mime"
	"net/http"
	"strings"
)

// Values holds submitted fields by name. Only the first value of a repeated
// field is kept.
type Values map[string]string

// Get returns the trimmed value of name.
func (v Values) Get(name string) string {
	return strings.TrimSpace(v[name])
}

// Map returns v as a plain map.
func (v Values) Map() map[string]string {
	return map[string]string(v)
}

func target(v any) (*Values, error) {
	switch t := v.(type) {
	case *Values:
		if *t == nil {
			*t = make(Values)
		}
		return t, nil
	case *map[string]string:
		if *t == nil {
			*t = make(map[string]string)
		}
		vals := (*Values)(t)
		return vals, nil
	default:
		return nil, ErrUnsupportedTarget
	}
}

// mediaType returns the lower-cased media type of r without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = ct[:i]
		}
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return false
	}
	return r.Body != nil && r.Body != http.NoBody
}
