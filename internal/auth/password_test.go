package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifyRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, VerifyPassword(hash, "secret123"))
	require.False(t, VerifyPassword(hash, "wrong-password"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	second, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// A bogus hash must fail the same way a wrong password does.
	require.False(t, VerifyPassword("not-a-bcrypt-hash", "secret123"))
	require.False(t, VerifyPassword("", "secret123"))
}
