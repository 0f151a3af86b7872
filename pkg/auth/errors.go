package auth

import "errors"

// Error is an expected business-rule failure. Use cases return it on the
// Left side of their result instead of as a Go error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Business-rule failures
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// Callers must not be able to tell the two cases apart.
	ErrInvalidCredentials = &Error{Code: "invalid_credentials", Message: "User credentials do not match."}

	ErrUserAlreadyExists = &Error{Code: "user_already_exists", Message: "User with the same email address already exists."}
)

// Infrastructure errors
var (
	// ErrDuplicateEmail is returned by UserRepository.Create when the email is taken.
	ErrDuplicateEmail = errors.New("auth: email already stored")
)
