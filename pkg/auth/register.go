package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/forum/pkg/cryptography"
	"github.com/dmitrymomot/forum/pkg/either"
	"github.com/dmitrymomot/forum/pkg/entity"
	"github.com/dmitrymomot/forum/pkg/logger"
	"github.com/dmitrymomot/forum/pkg/sanitizer"
)

// RegisterRequest carries the data of a new account.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// RegisterResponse holds the stored account.
type RegisterResponse struct {
	User *User
}

// RegisterResult is either ErrUserAlreadyExists or the created user.
type RegisterResult = either.Either[*Error, RegisterResponse]

// RegisterUseCase creates password-based accounts.
type RegisterUseCase struct {
	users  UserRepository
	hasher cryptography.Hasher
	logger *slog.Logger
	now    func() time.Time
}

type RegisterOption func(*RegisterUseCase)

// WithRegisterLogger sets a custom logger for the use case
func WithRegisterLogger(l *slog.Logger) RegisterOption {
	return func(uc *RegisterUseCase) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewRegisterUseCase(users UserRepository, hasher cryptography.Hasher, opts ...RegisterOption) *RegisterUseCase {
	uc := &RegisterUseCase{
		users:  users,
		hasher: hasher,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute stores a new user with a hashed password.
// An email that is already registered yields Left(ErrUserAlreadyExists), also
// when a concurrent registration wins the race between lookup and insert.
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (RegisterResult, error) {
	email := sanitizer.NormalizeEmail(req.Email)

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return either.Left[*Error, RegisterResponse](ErrUserAlreadyExists), nil
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           entity.NewID(),
		Name:         sanitizer.DisplayName(req.Name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    uc.now().UTC(),
	}

	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return either.Left[*Error, RegisterResponse](ErrUserAlreadyExists), nil
		}
		return RegisterResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.InfoContext(ctx, "user registered",
		logger.UserID(user.ID.String()),
		logger.Component("register"),
	)

	return either.Right[*Error](RegisterResponse{User: user}), nil
}
