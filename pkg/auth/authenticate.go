package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/forum/pkg/cryptography"
	"github.com/dmitrymomot/forum/pkg/either"
	"github.com/dmitrymomot/forum/pkg/logger"
	"github.com/dmitrymomot/forum/pkg/sanitizer"
)

// AuthenticateRequest carries the credentials of a login attempt.
// Password is plaintext and must never be logged or stored.
type AuthenticateRequest struct {
	Email    string
	Password string
}

// AuthenticateResponse is returned on successful authentication.
type AuthenticateResponse struct {
	AccessToken string
}

// AuthenticateResult is either ErrInvalidCredentials or an access token.
type AuthenticateResult = either.Either[*Error, AuthenticateResponse]

// AuthenticateUseCase verifies credentials and issues an access token.
// It holds no per-call state and is safe for concurrent use as long as its
// collaborators are.
type AuthenticateUseCase struct {
	users   UserRepository
	hasher  cryptography.Hasher
	encoder cryptography.Encoder
	logger  *slog.Logger
}

// AuthenticateOption configures an AuthenticateUseCase.
type AuthenticateOption func(*AuthenticateUseCase)

// WithAuthenticateLogger sets a custom logger for the use case
func WithAuthenticateLogger(l *slog.Logger) AuthenticateOption {
	return func(uc *AuthenticateUseCase) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewAuthenticateUseCase(
	users UserRepository,
	hasher cryptography.Hasher,
	encoder cryptography.Encoder,
	opts ...AuthenticateOption,
) *AuthenticateUseCase {
	uc := &AuthenticateUseCase{
		users:   users,
		hasher:  hasher,
		encoder: encoder,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs lookup, verification and token issuance.
//
// Unknown email and wrong password both yield Left(ErrInvalidCredentials).
// The error return is reserved for infrastructure failures of the repository,
// hasher or encoder; when it is non-nil the result must be ignored.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, req AuthenticateRequest) (AuthenticateResult, error) {
	email := sanitizer.NormalizeEmail(req.Email)

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return AuthenticateResult{}, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		uc.logger.DebugContext(ctx, "authentication rejected: unknown email",
			slog.String("email", sanitizer.MaskEmail(email)),
			logger.Component("authenticate"),
		)
		return either.Left[*Error, AuthenticateResponse](ErrInvalidCredentials), nil
	}

	ok, err := uc.hasher.Compare(req.Password, user.PasswordHash)
	if err != nil {
		return AuthenticateResult{}, fmt.Errorf("failed to compare password: %w", err)
	}
	if !ok {
		uc.logger.DebugContext(ctx, "authentication rejected: password mismatch",
			logger.UserID(user.ID.String()),
			logger.Component("authenticate"),
		)
		return either.Left[*Error, AuthenticateResponse](ErrInvalidCredentials), nil
	}

	token, err := uc.encoder.Encode(map[string]any{"sub": user.ID.String()})
	if err != nil {
		return AuthenticateResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	uc.logger.InfoContext(ctx, "user authenticated",
		logger.UserID(user.ID.String()),
		logger.Component("authenticate"),
	)

	return either.Right[*Error](AuthenticateResponse{AccessToken: token}), nil
}
