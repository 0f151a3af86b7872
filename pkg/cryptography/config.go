package cryptography

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/forum/pkg/jwt"
)

// Supported Hasher implementations.
const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

// Config selects and tunes the cryptography providers.
type Config struct {
	Hasher     string        `env:"PASSWORD_HASHER" envDefault:"bcrypt"` // Hasher is either "bcrypt" or "argon2id".
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`         // BcryptCost is the bcrypt work factor.
	JWTSecret  string        `env:"JWT_SECRET,required"`                 // JWTSecret signs issued access tokens.
	JWTIssuer  string        `env:"JWT_ISSUER" envDefault:"forum"`       // JWTIssuer is set as the iss claim and checked on verification.
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"24h"`            // JWTTTL is the lifetime of access tokens.
}

// NewHasher returns the Hasher named by cfg.Hasher.
func NewHasher(cfg Config) (Hasher, error) {
	switch strings.ToLower(cfg.Hasher) {
	case "", HasherBcrypt:
		return NewBcryptHasher(cfg.BcryptCost), nil
	case HasherArgon2id:
		return NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHasher, cfg.Hasher)
	}
}

// NewTokenService builds the jwt.Service shared by the encoder and the
// verification middleware.
func NewTokenService(cfg Config) (*jwt.Service, error) {
	svc, err := jwt.NewFromString(cfg.JWTSecret, jwt.WithIssuer(cfg.JWTIssuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingEncoderKey, err)
	}
	return svc, nil
}
