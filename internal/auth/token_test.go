package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-secret", 30, 7)
}

func TestTokenManager_AccessTokenRoundtrip(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.IssueAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Decode(token)
	require.NoError(t, err)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	require.Equal(t, uint64(42), id)
}

func TestTokenManager_RefreshTokenRoundtrip(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.IssueRefreshToken(7)
	require.NoError(t, err)

	claims, err := tm.Decode(token)
	require.NoError(t, err)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	require.Equal(t, uint64(7), id)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.IssueAccessTokenWithTTL(42, -time.Minute)
	require.NoError(t, err)

	_, err = tm.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := newTestTokenManager()
	other := NewTokenManager("another-secret", 30, 7)

	token, err := other.IssueAccessToken(42)
	require.NoError(t, err)

	_, err = tm.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MalformedToken(t *testing.T) {
	tm := newTestTokenManager()

	_, err := tm.Decode("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Decode("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsUnsignedToken(t *testing.T) {
	tm := newTestTokenManager()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_SubjectID_NonNumeric(t *testing.T) {
	tm := newTestTokenManager()

	now := time.Now()
	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-number",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	token, err := signed.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := tm.Decode(token)
	require.NoError(t, err)

	_, err = claims.SubjectID()
	require.ErrorIs(t, err, ErrInvalidToken)
}
