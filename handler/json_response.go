package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// JSONResponse is the envelope of every JSON answer.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMessage replaces the error message.
func WithJSONMessage(msg string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil {
			r.body.Error.Message = msg
		}
	}
}

// JSON wraps v in the data envelope with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError answers with the error envelope. The status comes from the
// error: 422 for validation errors, the code of an HTTPError, 500 otherwise.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	r.body.Error = errorToDetail(err, &r.status)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error, status *int) *ErrorDetail {
	if validator.IsValidationError(err) {
		verrs := validator.ExtractValidationErrors(err)
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{Code: "validation_error", Message: "validation failed"}
		if fields := verrs.Fields(); len(fields) > 0 {
			detail.Details = make(map[string][]string, len(fields))
			for _, f := range fields {
				detail.Details[f] = verrs.Get(f)
			}
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
}
