package auth

import "context"

// UseCase validates the provisioned test credential and issues session tokens.
type UseCase interface {
	// IssueToken checks the submitted credential pair against the configured
	// one and mints a session token carrying the access-tier claim.
	IssueToken(ctx context.Context, input TokenInput) (TokenOutput, error)
}
