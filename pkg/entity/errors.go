package entity

import "errors"

// ErrInvalidID is returned by ParseID for values that are not UUIDs.
var ErrInvalidID = errors.New("entity: invalid identifier")
