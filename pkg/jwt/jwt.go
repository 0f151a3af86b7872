package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Claims is any claims set accepted by Generate and Parse.
type Claims = jwtlib.Claims

// StandardClaims are the registered claims from RFC 7519 Section 4.1.
type StandardClaims = jwtlib.RegisteredClaims

// MapClaims is a free-form claims set, used when the shape is not known ahead.
type MapClaims = jwtlib.MapClaims

// NewNumericDate converts t into a claim timestamp with second precision.
func NewNumericDate(t time.Time) *jwtlib.NumericDate {
	return jwtlib.NewNumericDate(t)
}

// Service signs and verifies HS256 tokens.
// The signing key is kept in memory only and never changes after New returns,
// so a Service is safe for concurrent use.
type Service struct {
	signingKey []byte
	issuer     string
	leeway     time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithIssuer makes Parse reject tokens whose "iss" claim differs from iss.
func WithIssuer(iss string) Option {
	return func(s *Service) {
		s.issuer = iss
	}
}

// WithLeeway allows for clock skew when validating temporal claims.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) {
		s.leeway = d
	}
}

// New creates a JWT service with the provided signing key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	key := make([]byte, len(signingKey))
	copy(key, signingKey)

	s := &Service{signingKey: key}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString is a convenience wrapper around New for string-based configuration.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}
	return New([]byte(signingKey), opts...)
}

// Issuer returns the issuer the service was configured with, if any.
func (s *Service) Issuer() string {
	return s.issuer
}

// Generate signs claims and returns the compact token string.
func (s *Service) Generate(claims Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Parse verifies the token signature and temporal claims, then fills claims.
// Tokens signed with anything other than HS256 are rejected to prevent
// algorithm confusion attacks.
func (s *Service) Parse(tokenString string, claims Claims) error {
	if claims == nil {
		return ErrMissingClaims
	}

	opts := []jwtlib.ParserOption{jwtlib.WithIssuedAt()}
	if s.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(s.issuer))
	}
	if s.leeway > 0 {
		opts = append(opts, jwtlib.WithLeeway(s.leeway))
	}

	_, err := jwtlib.ParseWithClaims(tokenString, claims, s.keyFunc, opts...)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return ErrUnexpectedSigningMethod
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	default:
		return ErrInvalidToken
	}
}

func (s *Service) keyFunc(t *jwtlib.Token) (any, error) {
	if t.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
		return nil, ErrUnexpectedSigningMethod
	}
	return s.signingKey, nil
}
