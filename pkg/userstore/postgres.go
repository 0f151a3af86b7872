package userstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/forum/pkg/auth"
	"github.com/dmitrymomot/forum/pkg/entity"
	"github.com/dmitrymomot/forum/pkg/pg"
)

// DB is the subset of *pgxpool.Pool used by Postgres.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	findUserByEmailQuery = `SELECT id::text, name, email, password_hash, created_at FROM users WHERE email = $1`
	createUserQuery      = `INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`
)

var _ auth.UserRepository = (*Postgres)(nil)

// Postgres stores users in the users table created by db/migrations.
type Postgres struct {
	db DB
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

func (r *Postgres) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	var (
		u  auth.User
		id string
	)
	err := r.db.QueryRow(ctx, findUserByEmailQuery, email).
		Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("userstore: find by email: %w", err)
	}
	u.ID = entity.IDFrom(id)
	return &u, nil
}

func (r *Postgres) Create(ctx context.Context, user *auth.User) error {
	_, err := r.db.Exec(ctx, createUserQuery,
		user.ID.String(), user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return auth.ErrDuplicateEmail
		}
		return fmt.Errorf("userstore: create user: %w", err)
	}
	return nil
}
