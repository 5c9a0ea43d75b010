package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("senha123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := VerifyPassword("senha123", digest)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("senha123")
	require.NoError(t, err)

	// Wrong password is not an error, just false
	ok, err := VerifyPassword("outra-senha", digest)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("senha123", "not-a-digest")
	require.ErrorIs(t, err, ErrMalformedDigest)

	_, err = VerifyPassword("senha123", "$bcrypt$v=19$m=65536,t=3,p=2$abc$def")
	require.ErrorIs(t, err, ErrMalformedDigest)
}

func TestHashPassword_RandomSalt(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("senha123")
	require.NoError(t, err)
	b, err := HashPassword("senha123")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
