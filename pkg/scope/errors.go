package scope

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a JWT token is invalid, expired, or malformed.
	ErrInvalidToken = errors.New("invalid token")
)

// IsExpired reports whether a Verify error was caused by an expired signature.
// Expiry is deliberately distinguishable from other verification failures:
// optional-auth routes log it at info level instead of warning.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
