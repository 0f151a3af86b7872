// Package handler provides type-safe HTTP request handling for JSON APIs.
//
// A HandlerFunc receives a Context and a request value already decoded by the
// configured binders, and returns a Response that renders itself:
//
//	type loginRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	func login(ctx handler.Context, req loginRequest) handler.Response {
//		token, err := issue(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.RawJSON(http.StatusCreated, token)
//	}
//
//	r.Post("/sessions", handler.Wrap(login,
//		handler.WithBinders[handler.Context, loginRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, loginRequest](handler.JSONErrorHandler(log)),
//	))
//
// Errors from binders or rendering go to the ErrorHandler. JSONErrorHandler
// maps binder failures to 4xx, validator.ValidationErrors to 422 with
// per-field details, HTTPError values to their own status, and everything
// else to a logged 500 with a generic body.
package handler
