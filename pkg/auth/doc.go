// Package auth implements the account use cases of the forum: password
// registration and credential authentication with access token issuance.
//
// Use cases depend only on narrow capabilities: a UserRepository for lookup
// and storage, a cryptography.Hasher for password hashing and comparison and
// a cryptography.Encoder for token issuance. Concrete providers live in
// pkg/userstore and pkg/cryptography.
//
// # Results
//
// Expected business outcomes are returned as either.Either values whose Left
// side is an *Error (ErrInvalidCredentials, ErrUserAlreadyExists). The
// ordinary error return is reserved for infrastructure failures such as an
// unreachable database, and callers should map it to a server error.
//
//	res, err := authenticate.Execute(ctx, auth.AuthenticateRequest{
//		Email:    "john@example.com",
//		Password: "123456",
//	})
//	if err != nil {
//		// infrastructure failure
//	}
//	if failure, ok := res.Left(); ok {
//		// failure == auth.ErrInvalidCredentials
//	}
//	token := res.MustRight().AccessToken
//
// # User enumeration
//
// Authentication never reveals whether an email is registered: an unknown
// email and a wrong password produce the same ErrInvalidCredentials value.
package auth
