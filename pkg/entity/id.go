// Package entity provides the identity primitive shared by every domain
// object. Entities are distinguished by ID rather than by attribute equality.
package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ID is an immutable entity identifier. The zero value is an empty identity.
// Two IDs are equal iff they wrap the same underlying value, so ID can be
// compared with == and used as a map key.
type ID struct {
	value string
}

// NewID generates a fresh random identity.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFrom wraps an existing value, e.g. one loaded from storage.
// The value is taken verbatim; use ParseID when it must be a UUID.
func IDFrom(value string) ID {
	return ID{value: value}
}

// ParseID wraps value after checking it is a well-formed UUID.
func ParseID(value string) (ID, error) {
	u, err := uuid.Parse(value)
	if err != nil {
		return ID{}, ErrInvalidID
	}
	return ID{value: u.String()}, nil
}

// Equals reports whether both identities wrap the same value.
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

func (id ID) String() string {
	return id.value
}

// IsZero reports whether the identity was never assigned.
func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	id.value = v
	return nil
}
