package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/forum/pkg/binder"
	"github.com/dmitrymomot/forum/pkg/logger"
)

// JSONErrorHandler renders errors as JSON error envelopes. Server errors are
// logged at error level, client errors at debug.
func JSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		err = classifyBindError(err)
		resp := JSONError(err).(*jsonResponse)

		r := ctx.Request()
		attrs := []any{
			logger.Error(err),
			logger.Status(resp.status),
			logger.HTTPRequest(r.Method, r.URL.Path, r.RemoteAddr),
		}
		if resp.status >= http.StatusInternalServerError {
			log.ErrorContext(ctx, "request failed", attrs...)
		} else {
			log.DebugContext(ctx, "request rejected", attrs...)
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}

// classifyBindError turns binder sentinels into HTTPError values and keeps
// the decoder's description as the client message.
func classifyBindError(err error) error {
	var base HTTPError
	switch {
	case errors.Is(err, binder.ErrRequestTooLarge):
		base = ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		base = ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrInvalidJSON):
		base = ErrBadRequest
	default:
		return err
	}
	return base.WithMessage(err.Error())
}
