package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifierAcceptsValidToken(t *testing.T) {
	v := NewJWTVerifier("top-secret")
	uid, err := v.UserIDFromToken(signToken(t, "top-secret", "user-a"))
	require.NoError(t, err)
	assert.Equal(t, "user-a", uid)
}

func TestJWTVerifierRejectsWrongSecret(t *testing.T) {
	v := NewJWTVerifier("top-secret")
	_, err := v.UserIDFromToken(signToken(t, "other-secret", "user-a"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierRejectsExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-a",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("top-secret"))
	require.NoError(t, err)

	v := NewJWTVerifier("top-secret")
	_, err = v.UserIDFromToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierRejectsMissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("top-secret"))
	require.NoError(t, err)

	v := NewJWTVerifier("top-secret")
	_, err = v.UserIDFromToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierRejectsGarbage(t *testing.T) {
	v := NewJWTVerifier("top-secret")
	_, err := v.UserIDFromToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDisabledVerifier(t *testing.T) {
	v := NewDisabled()
	_, err := v.UserIDFromToken(signToken(t, "whatever", "user-a"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}
