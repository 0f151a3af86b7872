package account

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/forum/handler"
	"github.com/dmitrymomot/forum/pkg/auth"
	"github.com/dmitrymomot/forum/pkg/binder"
	"github.com/dmitrymomot/forum/pkg/either"
	"github.com/dmitrymomot/forum/pkg/logger"
	"github.com/dmitrymomot/forum/pkg/ratelimiter"
	"github.com/dmitrymomot/forum/pkg/validator"
)

// Authenticator is satisfied by *auth.AuthenticateUseCase.
type Authenticator interface {
	Execute(ctx context.Context, req auth.AuthenticateRequest) (auth.AuthenticateResult, error)
}

// Registrar is satisfied by *auth.RegisterUseCase.
type Registrar interface {
	Execute(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResult, error)
}

// Input limits for registration.
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72 // bcrypt ignores the rest
	MaxNameLength     = 100
	MaxEmailLength    = 254
)

type PasswordService struct {
	authenticate Authenticator
	register     Registrar
	limiter      *ratelimiter.Bucket
	logger       *slog.Logger
}

type PasswordOption func(*PasswordService)

// WithLoginLimiter throttles POST /sessions per client IP.
func WithLoginLimiter(b *ratelimiter.Bucket) PasswordOption {
	return func(s *PasswordService) {
		s.limiter = b
	}
}

func WithPasswordLogger(l *slog.Logger) PasswordOption {
	return func(s *PasswordService) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewPasswordService(authenticate Authenticator, register Registrar, opts ...PasswordOption) *PasswordService {
	s := &PasswordService{
		authenticate: authenticate,
		register:     register,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PasswordService) Handle() http.Handler {
	r := chi.NewRouter()
	errorHandler := handler.JSONErrorHandler(s.logger)

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter,
				ratelimiter.Prefixed("login", ratelimiter.ClientIP),
				ratelimiter.WithMiddlewareLogger(s.logger),
				ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
					writeError(w, r, errTooManyAttempts)
				}),
				ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, _ error) {
					writeError(w, r, handler.ErrServiceUnavailable)
				}),
			))
		}
		r.Post("/sessions", handler.Wrap(s.login,
			handler.WithBinders[handler.Context, LoginRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, LoginRequest](errorHandler),
		))
	})

	r.Post("/accounts", handler.Wrap(s.signup,
		handler.WithBinders[handler.Context, RegisterRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, RegisterRequest](errorHandler),
	))

	return r
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req LoginRequest) Validate() error {
	return validator.Apply(
		validator.Required("email", req.Email),
		validator.ValidEmail("email", req.Email),
		validator.Required("password", req.Password),
	)
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (s *PasswordService) login(ctx handler.Context, req LoginRequest) handler.Response {
	if err := req.Validate(); err != nil {
		return handler.Fail(err)
	}

	result, err := s.authenticate.Execute(ctx, auth.AuthenticateRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handler.Fail(err)
	}

	return either.Fold(result,
		authErrorResponse,
		func(resp auth.AuthenticateResponse) handler.Response {
			return handler.RawJSON(http.StatusCreated, TokenResponse{AccessToken: resp.AccessToken})
		},
	)
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req RegisterRequest) Validate() error {
	return validator.Apply(
		validator.Required("name", req.Name),
		validator.MaxLen("name", req.Name, MaxNameLength),
		validator.Required("email", req.Email),
		validator.ValidEmail("email", req.Email),
		validator.MaxLen("email", req.Email, MaxEmailLength),
		validator.Required("password", req.Password),
		validator.MinLen("password", req.Password, MinPasswordLength),
		validator.MaxBytes("password", req.Password, MaxPasswordBytes),
	)
}

func (s *PasswordService) signup(ctx handler.Context, req RegisterRequest) handler.Response {
	if err := req.Validate(); err != nil {
		return handler.Fail(err)
	}

	result, err := s.register.Execute(ctx, auth.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handler.Fail(err)
	}

	return either.Fold(result,
		authErrorResponse,
		func(auth.RegisterResponse) handler.Response {
			return handler.EmptyWithStatus(http.StatusCreated)
		},
	)
}
