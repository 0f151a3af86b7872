package account

import (
	"net/http"

	"github.com/dmitrymomot/forum/handler"
	"github.com/dmitrymomot/forum/pkg/auth"
)

var errTooManyAttempts = handler.ErrTooManyRequests.WithMessage("Too many login attempts, try again later.")

// authErrorStatus maps business failures to response codes.
var authErrorStatus = map[string]int{
	auth.ErrInvalidCredentials.Code: http.StatusUnauthorized,
	auth.ErrUserAlreadyExists.Code:  http.StatusConflict,
}

// authErrorResponse renders a Left result. Unknown codes are client errors.
func authErrorResponse(e *auth.Error) handler.Response {
	status, ok := authErrorStatus[e.Code]
	if !ok {
		status = http.StatusBadRequest
	}
	return handler.JSONError(handler.NewHTTPError(status, e.Code, e.Message))
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	_ = handler.JSONError(err).Render(w, r)
}
