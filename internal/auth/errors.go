package auth

import "errors"

var (
	// ErrWrongCredentials is returned on any credential mismatch. Callers must
	// not reveal which of email or password was wrong.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrServerMisconfigured is returned when the server-side test credential
	// is not provisioned. The missing value must never reach the client.
	ErrServerMisconfigured = errors.New("test user key is not configured")
)
