package binder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// DefaultMaxJSONSize is the largest JSON body JSON accepts.
const DefaultMaxJSONSize = 64 << 10

// JSON binds a flat JSON object into *Values. Strings are taken as is,
// numbers and booleans are formatted, null and nested values are skipped.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) || mediaType(r) != "application/json" {
			return ErrBinderNotApplicable
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return errors.Join(ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return ErrRequestBodyTooLarge
		}

		var raw map[string]any
		if err := json.Unmarshal(body, &raw); err != nil {
			return errors.Join(ErrFailedToParseJSON, err)
		}

		dst, err := target(v)
		if err != nil {
			return err
		}
		for name, val := range raw {
			switch t := val.(type) {
			case string:
				(*dst)[name] = t
			case float64:
				(*dst)[name] = strconv.FormatFloat(t, 'f', -1, 64)
			case bool:
				(*dst)[name] = strconv.FormatBool(t)
			}
		}
		return nil
	}
}
