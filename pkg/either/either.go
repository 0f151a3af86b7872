package either

// Either holds exactly one of a failure value (Left) or a success value (Right).
// The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds a failed result.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right builds a successful result.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsLeft reports whether the result holds a failure.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether the result holds a success value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the failure value. The second result is false for a Right.
func (e Either[L, R]) Left() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// Right returns the success value. The second result is false for a Left.
func (e Either[L, R]) Right() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// MustLeft returns the failure value and panics with ErrNotLeft on a Right.
// Reading the wrong side is a programming error, not a business failure.
func (e Either[L, R]) MustLeft() L {
	if e.isRight {
		panic(ErrNotLeft)
	}
	return e.left
}

// MustRight returns the success value and panics with ErrNotRight on a Left.
func (e Either[L, R]) MustRight() R {
	if !e.isRight {
		panic(ErrNotRight)
	}
	return e.right
}

// Fold reduces e to a single value, calling exactly one of the callbacks.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
