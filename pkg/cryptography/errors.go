package cryptography

import "errors"

// Hashing and encoding failures. A mismatch is never an error.
var (
	ErrEmptyPassword     = errors.New("cryptography: password cannot be empty")
	ErrInvalidHash       = errors.New("cryptography: invalid hash format")
	ErrUnsupportedHasher = errors.New("cryptography: unsupported hasher")
	ErrFailedToHash      = errors.New("cryptography: failed to hash password")
	ErrFailedToEncode    = errors.New("cryptography: failed to encode token")
	ErrMissingEncoderKey = errors.New("cryptography: missing token signing key")
)
