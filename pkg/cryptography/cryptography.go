// Package cryptography defines the hashing and token-encoding capabilities
// used by the account use cases, together with their production providers.
//
// Both capabilities are narrow interfaces so use cases can be exercised with
// deterministic fakes and the primitive behind them can be swapped through
// configuration.
package cryptography

// Hasher turns plaintext passwords into one-way hashes and checks candidates
// against them. Implementations must compare in constant time with respect
// to the stored hash.
type Hasher interface {
	// Hash returns an encoded hash of plain. Output may differ between calls
	// for the same input because of a random salt. The empty password is not
	// hashable and yields ErrEmptyPassword.
	Hash(plain string) (string, error)

	// Compare reports whether plain was the input of a Hash call that produced
	// hashed. A mismatch is (false, nil); a hash that cannot be decoded is an error.
	Compare(plain, hashed string) (bool, error)
}

// Encoder produces an opaque, signed bearer token carrying claims.
type Encoder interface {
	Encode(claims map[string]any) (string, error)
}
