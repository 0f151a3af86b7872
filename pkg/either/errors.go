package either

import "errors"

// Panic values of MustLeft and MustRight.
var (
	// ErrNotLeft is raised by MustLeft on a Right value.
	ErrNotLeft = errors.New("either: value is not a left")
	// ErrNotRight is raised by MustRight on a Left value.
	ErrNotRight = errors.New("either: value is not a right")
)
