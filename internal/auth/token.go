package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Decode for every token failure. Expired,
// malformed and tampered tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload. The subject carries the user ID as a
// string-encoded integer.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed JWTs.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager. Access TTL is given in minutes,
// refresh TTL in days.
func NewTokenManager(secret string, accessTTLMinutes, refreshTTLDays int) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessTTLMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshTTLDays) * 24 * time.Hour,
	}
}

// IssueAccessToken signs a short-lived token for the given user.
func (m *TokenManager) IssueAccessToken(userID uint64) (string, error) {
	return m.issue(userID, m.accessTTL)
}

// IssueAccessTokenWithTTL signs an access token with an explicit TTL instead
// of the configured default.
func (m *TokenManager) IssueAccessTokenWithTTL(userID uint64, ttl time.Duration) (string, error) {
	return m.issue(userID, ttl)
}

// IssueRefreshToken signs a long-lived token for the given user.
func (m *TokenManager) IssueRefreshToken(userID uint64) (string, error) {
	return m.issue(userID, m.refreshTTL)
}

func (m *TokenManager) issue(userID uint64, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the signature and expiry of a token and returns its claims.
// Any failure yields ErrInvalidToken.
func (m *TokenManager) Decode(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SubjectID parses the subject claim as a user ID.
func (c *Claims) SubjectID() (uint64, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}
