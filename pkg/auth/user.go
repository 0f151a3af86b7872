package auth

import (
	"context"
	"time"

	"github.com/dmitrymomot/forum/pkg/entity"
)

// User is the account projection used by the authentication path.
// PasswordHash is only ever produced by a cryptography.Hasher.
type User struct {
	ID           entity.ID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository looks up and stores accounts. Email is unique across users.
//
// FindByEmail returns (nil, nil) when no user has the email. A non-nil error
// always means the lookup itself failed and must not be treated as "not found".
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}
