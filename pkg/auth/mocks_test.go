package auth

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockHasher is a mock implementation of cryptography.Hasher.
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(plain, hashed string) (bool, error) {
	args := m.Called(plain, hashed)
	return args.Bool(0), args.Error(1)
}

// MockEncoder is a mock implementation of cryptography.Encoder.
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(claims map[string]any) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

// fakeHasher appends a fixed suffix so stored hashes are predictable.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return plain + "-hashed", nil
}

func (fakeHasher) Compare(plain, hashed string) (bool, error) {
	return plain+"-hashed" == hashed, nil
}

// fakeEncoder renders the subject claim into a readable token.
type fakeEncoder struct{}

func (fakeEncoder) Encode(claims map[string]any) (string, error) {
	sub, _ := claims["sub"].(string)
	return "token:" + sub, nil
}

// inMemoryUsers is a minimal UserRepository backed by a map keyed by email.
type inMemoryUsers struct {
	mu    sync.RWMutex
	items map[string]*User
}

func newInMemoryUsers(users ...*User) *inMemoryUsers {
	r := &inMemoryUsers{items: make(map[string]*User)}
	for _, u := range users {
		r.items[u.Email] = u
	}
	return r
}

func (r *inMemoryUsers) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *inMemoryUsers) Create(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.Email]; ok {
		return ErrDuplicateEmail
	}
	r.items[user.Email] = user
	return nil
}
