package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/forum/handler"
	"github.com/dmitrymomot/forum/pkg/jwt"
)

// ProfileService answers with the identity of the bearer token holder.
type ProfileService struct {
	tokens *jwt.Service
}

func NewProfileService(tokens *jwt.Service) *ProfileService {
	return &ProfileService{tokens: tokens}
}

func (s *ProfileService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Use(jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
		Service: s.tokens,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, _ error) {
			writeError(w, r, handler.ErrUnauthorized)
		},
	}))
	r.Get("/", handler.Wrap(s.me,
		handler.WithErrorHandler[handler.Context, struct{}](handler.JSONErrorHandler(nil)),
	))

	return r
}

// ProfileResponse is the body of GET /me.
type ProfileResponse struct {
	Subject string `json:"sub"`
}

func (s *ProfileService) me(ctx handler.Context, _ struct{}) handler.Response {
	sub, ok := jwt.Subject(ctx)
	if !ok {
		return handler.Fail(handler.ErrUnauthorized)
	}
	return handler.JSON(ProfileResponse{Subject: sub})
}
