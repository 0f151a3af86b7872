package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/forum/pkg/auth"
	"github.com/dmitrymomot/forum/pkg/entity"
)

const usersCollection = "users"

type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toDocument(u *auth.User) userDocument {
	return userDocument{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

func (d userDocument) user() *auth.User {
	return &auth.User{
		ID:           entity.IDFrom(d.ID),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

var _ auth.UserRepository = (*Mongo)(nil)

// Mongo stores users in the users collection with a unique index on email.
type Mongo struct {
	coll *mongo.Collection
}

// NewMongo ensures the email index exists and returns the repository.
func NewMongo(ctx context.Context, db *mongo.Database) (*Mongo, error) {
	coll := db.Collection(usersCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_key"),
	})
	if err != nil {
		return nil, fmt.Errorf("userstore: create email index: %w", err)
	}
	return &Mongo{coll: coll}, nil
}

func (r *Mongo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("userstore: find by email: %w", err)
	}
	return doc.user(), nil
}

func (r *Mongo) Create(ctx context.Context, user *auth.User) error {
	if _, err := r.coll.InsertOne(ctx, toDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return auth.ErrDuplicateEmail
		}
		return fmt.Errorf("userstore: create user: %w", err)
	}
	return nil
}
