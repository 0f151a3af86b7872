package cryptography_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/forum/pkg/cryptography"
)

func hashers() map[string]cryptography.Hasher {
	return map[string]cryptography.Hasher{
		"bcrypt":   cryptography.NewBcryptHasher(bcrypt.MinCost),
		"argon2id": cryptography.NewArgon2idHasher(),
	}
}

func TestHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"123456", "correct horse battery staple", "пароль", " spaced "}

	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, plain := range inputs {
				hashed, err := h.Hash(plain)
				require.NoError(t, err)
				assert.NotEqual(t, plain, hashed, "hash must never equal the plaintext")

				ok, err := h.Compare(plain, hashed)
				require.NoError(t, err)
				assert.True(t, ok, "compare(%q, hash(%q))", plain, plain)
			}
		})
	}
}

func TestHasher_Mismatch(t *testing.T) {
	t.Parallel()

	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			hashed, err := h.Hash("123456")
			require.NoError(t, err)

			for _, candidate := range []string{"wrong", "1234567", "12345", ""} {
				ok, err := h.Compare(candidate, hashed)
				require.NoError(t, err)
				assert.False(t, ok, "candidate %q must not match", candidate)
			}
		})
	}
}

func TestHasher_Salted(t *testing.T) {
	t.Parallel()

	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := h.Hash("123456")
			require.NoError(t, err)
			second, err := h.Hash("123456")
			require.NoError(t, err)
			assert.NotEqual(t, first, second)
		})
	}
}

func TestHasher_EmptyPassword(t *testing.T) {
	t.Parallel()

	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := h.Hash("")
			assert.ErrorIs(t, err, cryptography.ErrEmptyPassword)
		})
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	t.Parallel()

	salt := "c29tZXNhbHRzb21lc2FsdA"
	key := "a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2U"
	bad := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=1,p=4$%%%$%%%",
		"$2a$10$short",
		"$argon2id$v=19$m=65536,t=0,p=4$" + salt + "$" + key,
		"$argon2id$v=19$m=65536,t=17,p=4$" + salt + "$" + key,
		"$argon2id$v=19$m=4294967295,t=1,p=4$" + salt + "$" + key,
		"$argon2id$v=19$m=16,t=1,p=4$" + salt + "$" + key,
		"$argon2id$v=19$m=65536,t=1,p=0$" + salt + "$" + key,
	}

	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, hashed := range bad {
				var (
					ok  bool
					err error
				)
				require.NotPanics(t, func() {
					ok, err = h.Compare("123456", hashed)
				}, "hash %q", hashed)
				assert.False(t, ok)
				assert.ErrorIs(t, err, cryptography.ErrInvalidHash, "hash %q", hashed)
			}
		})
	}
}

func TestArgon2idHasher_Format(t *testing.T) {
	t.Parallel()

	hashed, err := cryptography.NewArgon2idHasher().Hash("123456")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$argon2id$v=19$m=65536,t=1,p=4$"))
}

func TestArgon2idHasher_RejectsForeignHashes(t *testing.T) {
	t.Parallel()

	bcryptHash, err := cryptography.NewBcryptHasher(bcrypt.MinCost).Hash("123456")
	require.NoError(t, err)

	ok, err := cryptography.NewArgon2idHasher().Compare("123456", bcryptHash)
	assert.False(t, ok)
	assert.ErrorIs(t, err, cryptography.ErrInvalidHash)
}

func TestNewHasher(t *testing.T) {
	t.Parallel()

	h, err := cryptography.NewHasher(cryptography.Config{Hasher: "bcrypt", BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	assert.IsType(t, &cryptography.BcryptHasher{}, h)

	h, err = cryptography.NewHasher(cryptography.Config{Hasher: "ARGON2ID"})
	require.NoError(t, err)
	assert.IsType(t, &cryptography.Argon2idHasher{}, h)

	_, err = cryptography.NewHasher(cryptography.Config{Hasher: "md5"})
	assert.ErrorIs(t, err, cryptography.ErrUnsupportedHasher)
}

func TestBcryptHasher_RejectsInputBeyond72Bytes(t *testing.T) {
	t.Parallel()

	h := cryptography.NewBcryptHasher(bcrypt.MinCost)
	password := strings.Repeat("a", 72)
	hashed, err := h.Hash(password)
	require.NoError(t, err)

	ok, err := h.Compare(password, hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(password+"EXTRA", hashed)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Compare(password+"EXTRA", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.ErrorIs(t, err, cryptography.ErrInvalidHash)
}
