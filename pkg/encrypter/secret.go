package encrypter

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a secret using bcrypt with the default cost.
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CompareSecret compares a presented secret against the configured one.
// When the configured value is a bcrypt digest the comparison goes through
// bcrypt; otherwise it is a constant-time byte comparison of the plaintext.
func CompareSecret(configured, presented string) bool {
	if configured == "" {
		return false
	}
	if isBcryptDigest(configured) {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(presented)) == 1
}

func isBcryptDigest(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
