package userstore

import (
	"context"
	"sync"

	"github.com/dmitrymomot/forum/pkg/auth"
)

var _ auth.UserRepository = (*Memory)(nil)

// Memory keeps users in a map keyed by email. It is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	users map[string]auth.User
}

func NewMemory(users ...*auth.User) *Memory {
	m := &Memory{users: make(map[string]auth.User, len(users))}
	for _, u := range users {
		m.users[u.Email] = *u
	}
	return m
}

func (m *Memory) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *Memory) Create(_ context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return auth.ErrDuplicateEmail
	}
	m.users[user.Email] = *user
	return nil
}
