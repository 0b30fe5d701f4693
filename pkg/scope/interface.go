package scope

// Manager defines the interface for session token management.
// Implementations are safe for concurrent use; minting and verification are
// pure CPU operations with no I/O.
type Manager interface {
	// Verify verifies a token and returns the payload if valid.
	Verify(token string) (Payload, error)
	// CreateToken mints a token for identity with the given data-access tier.
	CreateToken(identity, dataAccess string) (string, error)
}

// New creates a new scope Manager with the provided secret key.
// Panics if secretKey is empty: signing with an empty secret is never allowed.
func New(secretKey string) Manager {
	if secretKey == "" {
		panic("scope: secret key cannot be empty")
	}
	return &implManager{secretKey: secretKey}
}
