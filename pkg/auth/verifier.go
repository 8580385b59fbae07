package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrNotConfigured = errors.New("auth not configured")
)

// Verifier turns a bearer token into a user id. The auth provider is an
// external collaborator; its access tokens are HS256 JWTs whose subject is
// the user id, so verification happens locally against the shared secret.
type Verifier interface {
	UserIDFromToken(token string) (string, error)
}

type jwtVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) Verifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) UserIDFromToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

type disabledVerifier struct{}

// NewDisabled serves deployments without an auth secret: every token is
// rejected, so all requests run anonymously.
func NewDisabled() Verifier { return disabledVerifier{} }

func (disabledVerifier) UserIDFromToken(string) (string, error) {
	return "", ErrNotConfigured
}
