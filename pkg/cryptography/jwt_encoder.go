package cryptography

import (
	"errors"
	"maps"
	"time"

	"github.com/dmitrymomot/forum/pkg/jwt"
)

// JWTEncoder issues HS256 access tokens. Registered claims iat, exp and iss
// are added on top of the caller's claims; caller-supplied values win.
type JWTEncoder struct {
	service *jwt.Service
	ttl     time.Duration
	now     func() time.Time
}

// EncoderOption configures a JWTEncoder.
type EncoderOption func(*JWTEncoder)

// WithTokenTTL sets the lifetime of issued tokens. Zero disables the exp claim.
func WithTokenTTL(ttl time.Duration) EncoderOption {
	return func(e *JWTEncoder) {
		e.ttl = ttl
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) EncoderOption {
	return func(e *JWTEncoder) {
		if now != nil {
			e.now = now
		}
	}
}

// NewJWTEncoder creates an encoder signing with service's key.
func NewJWTEncoder(service *jwt.Service, opts ...EncoderOption) (*JWTEncoder, error) {
	if service == nil {
		return nil, ErrMissingEncoderKey
	}

	e := &JWTEncoder{
		service: service,
		ttl:     24 * time.Hour,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *JWTEncoder) Encode(claims map[string]any) (string, error) {
	now := e.now()

	payload := jwt.MapClaims{"iat": now.Unix()}
	if e.ttl > 0 {
		payload["exp"] = now.Add(e.ttl).Unix()
	}
	if iss := e.service.Issuer(); iss != "" {
		payload["iss"] = iss
	}
	maps.Copy(payload, claims)

	token, err := e.service.Generate(payload)
	if err != nil {
		return "", errors.Join(ErrFailedToEncode, err)
	}
	return token, nil
}

var _ Encoder = (*JWTEncoder)(nil)
