package cryptography

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher. A cost outside bcrypt's accepted
// range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", errors.Join(ErrFailedToHash, err)
	}
	return string(hash), nil
}

// bcryptMaxPasswordLen is the number of input bytes bcrypt actually uses.
const bcryptMaxPasswordLen = 72

// Compare never matches input longer than 72 bytes. bcrypt itself would
// ignore the excess and accept any suffix of a 72-byte password.
func (h *BcryptHasher) Compare(plain, hashed string) (bool, error) {
	if len(plain) > bcryptMaxPasswordLen {
		if _, err := bcrypt.Cost([]byte(hashed)); err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidHash, err)
		}
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
}

var _ Hasher = (*BcryptHasher)(nil)
