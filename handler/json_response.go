package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/forum/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to an enveloped response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if env, ok := r.body.(JSONResponse); ok {
			env.Meta = meta
			r.body = env
		}
	}
}

// JSON wraps v in the {"data": ...} envelope.
// Errors and *ErrorDetail values are rendered like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	switch val := v.(type) {
	case *ErrorDetail, error:
		return JSONError(val, opts...)
	}

	r := &jsonResponse{status: http.StatusOK}
	if env, ok := v.(JSONResponse); ok {
		r.body = env
	} else {
		r.body = JSONResponse{Data: v}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RawJSON encodes v as the whole body, without the envelope.
func RawJSON(status int, v any) Response {
	return &jsonResponse{status: status, body: v}
}

// JSONError creates a JSON error response from an error or *ErrorDetail.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	env := JSONResponse{}
	switch e := err.(type) {
	case *ErrorDetail:
		env.Error = e
	case error:
		env.Error = errorToDetail(e, &r.status)
	default:
		env.Error = &ErrorDetail{
			Code:    ErrInternalServerError.Key,
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
	r.body = env

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail maps known error kinds to a detail and status. Unknown
// errors get a generic message so internals never leak to clients.
func errorToDetail(err error, status *int) *ErrorDetail {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		*status = http.StatusUnprocessableEntity
		return &ErrorDetail{
			Code:    "validation_error",
			Message: "Request validation failed.",
			Details: verrs.Map(),
		}
	}

	if httpErr, ok := AsHTTPError(err); ok {
		*status = httpErr.Code
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		return &ErrorDetail{Code: httpErr.Key, Message: msg}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
