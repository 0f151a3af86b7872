package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forum/pkg/entity"
)

func newJohn(t *testing.T) *User {
	t.Helper()

	hash, err := fakeHasher{}.Hash("123456")
	require.NoError(t, err)

	return &User{
		ID:           entity.NewID(),
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestAuthenticateUseCase_Execute(t *testing.T) {
	t.Parallel()

	t.Run("issues access token for valid credentials", func(t *testing.T) {
		t.Parallel()

		john := newJohn(t)
		uc := NewAuthenticateUseCase(newInMemoryUsers(john), fakeHasher{}, fakeEncoder{})

		res, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "john@example.com",
			Password: "123456",
		})
		require.NoError(t, err)
		require.True(t, res.IsRight())

		resp, ok := res.Right()
		require.True(t, ok)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "token:"+john.ID.String(), resp.AccessToken)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()

		uc := NewAuthenticateUseCase(newInMemoryUsers(newJohn(t)), fakeHasher{}, fakeEncoder{})

		res, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "john@example.com",
			Password: "wrong-password",
		})
		require.NoError(t, err)
		require.True(t, res.IsLeft())
		assert.Same(t, ErrInvalidCredentials, res.MustLeft())
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		t.Parallel()

		uc := NewAuthenticateUseCase(newInMemoryUsers(), fakeHasher{}, fakeEncoder{})

		res, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "john@example.com",
			Password: "123456",
		})
		require.NoError(t, err)
		require.True(t, res.IsLeft())
		assert.Same(t, ErrInvalidCredentials, res.MustLeft())
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		uc := NewAuthenticateUseCase(newInMemoryUsers(newJohn(t)), fakeHasher{}, fakeEncoder{})
		ctx := context.Background()

		unknown, err := uc.Execute(ctx, AuthenticateRequest{Email: "jane@example.com", Password: "123456"})
		require.NoError(t, err)
		mismatch, err := uc.Execute(ctx, AuthenticateRequest{Email: "john@example.com", Password: "654321"})
		require.NoError(t, err)

		assert.Equal(t, unknown.MustLeft(), mismatch.MustLeft())
	})

	t.Run("normalizes email before lookup", func(t *testing.T) {
		t.Parallel()

		uc := NewAuthenticateUseCase(newInMemoryUsers(newJohn(t)), fakeHasher{}, fakeEncoder{})

		res, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "  John@Example.COM ",
			Password: "123456",
		})
		require.NoError(t, err)
		assert.True(t, res.IsRight())
	})

	t.Run("encodes subject claim only", func(t *testing.T) {
		t.Parallel()

		john := newJohn(t)
		encoder := &MockEncoder{}
		encoder.On("Encode", map[string]any{"sub": john.ID.String()}).Return("signed-token", nil).Once()

		uc := NewAuthenticateUseCase(newInMemoryUsers(john), fakeHasher{}, encoder)

		res, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "john@example.com",
			Password: "123456",
		})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", res.MustRight().AccessToken)
		encoder.AssertExpectations(t)
	})
}

func TestAuthenticateUseCase_InfrastructureFailures(t *testing.T) {
	t.Parallel()

	t.Run("repository failure is returned as error", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("connection refused")
		users := &MockUserRepository{}
		users.On("FindByEmail", mock.Anything, "john@example.com").Return(nil, dbErr).Once()

		hasher := &MockHasher{}
		encoder := &MockEncoder{}
		uc := NewAuthenticateUseCase(users, hasher, encoder)

		res, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "john@example.com",
			Password: "123456",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, res.IsRight())

		users.AssertExpectations(t)
		hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
		encoder.AssertNotCalled(t, "Encode", mock.Anything)
	})

	t.Run("hasher failure is returned as error", func(t *testing.T) {
		t.Parallel()

		john := newJohn(t)
		hashErr := errors.New("malformed hash")

		hasher := &MockHasher{}
		hasher.On("Compare", "123456", john.PasswordHash).Return(false, hashErr).Once()
		encoder := &MockEncoder{}

		uc := NewAuthenticateUseCase(newInMemoryUsers(john), hasher, encoder)

		_, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "john@example.com",
			Password: "123456",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, hashErr)

		hasher.AssertExpectations(t)
		encoder.AssertNotCalled(t, "Encode", mock.Anything)
	})

	t.Run("encoder failure is returned as error", func(t *testing.T) {
		t.Parallel()

		john := newJohn(t)
		encErr := errors.New("signing failed")

		encoder := &MockEncoder{}
		encoder.On("Encode", mock.Anything).Return("", encErr).Once()

		uc := NewAuthenticateUseCase(newInMemoryUsers(john), fakeHasher{}, encoder)

		_, err := uc.Execute(context.Background(), AuthenticateRequest{
			Email:    "john@example.com",
			Password: "123456",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, encErr)
		encoder.AssertExpectations(t)
	})
}

func TestNewAuthenticateUseCase(t *testing.T) {
	t.Parallel()

	t.Run("uses discard logger by default", func(t *testing.T) {
		t.Parallel()

		uc := NewAuthenticateUseCase(newInMemoryUsers(), fakeHasher{}, fakeEncoder{})
		assert.NotNil(t, uc.logger)
	})

	t.Run("ignores nil logger", func(t *testing.T) {
		t.Parallel()

		uc := NewAuthenticateUseCase(newInMemoryUsers(), fakeHasher{}, fakeEncoder{}, WithAuthenticateLogger(nil))
		assert.NotNil(t, uc.logger)
	})
}
