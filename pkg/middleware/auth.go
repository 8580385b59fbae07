package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"tripagent/pkg/auth"
)

// OptionalAuth resolves an Authorization: Bearer token into a context uid
// when present and valid, and lets the request through either way. Routes
// that require a caller enforce it themselves so they can answer 401 with
// the right message.
func OptionalAuth(v auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := BearerToken(c); token != "" {
				if uid, err := v.UserIDFromToken(token); err == nil {
					c.Set("uid", uid)
				}
			}
			return next(c)
		}
	}
}

// BearerToken extracts the bearer token from the request, or "".
func BearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// UserID returns the authenticated user id set by OptionalAuth, or "".
func UserID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}
