package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodySize limits JSON bodies read by JSON.
const DefaultMaxBodySize int64 = 1 << 20

type jsonConfig struct {
	maxBodySize  int64
	allowUnknown bool
}

type JSONOption func(*jsonConfig)

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithUnknownFields accepts fields that have no struct counterpart.
func WithUnknownFields() JSONOption {
	return func(c *jsonConfig) {
		c.allowUnknown = true
	}
}

// JSON decodes a single application/json object into v.
// Unknown fields and trailing data are rejected.
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := &jsonConfig{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, cfg.maxBodySize))
		if !cfg.allowUnknown {
			dec.DisallowUnknownFields()
		}

		if err := dec.Decode(v); err != nil {
			return decodeError(err)
		}
		if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return decodeError(err)
			}
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}
		return nil
	}
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: unexpected end of input", ErrInvalidJSON)
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("%w: syntax error at offset %d", ErrInvalidJSON, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: field %q must be %s", ErrInvalidJSON, typeErr.Field, typeErr.Type)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
}
