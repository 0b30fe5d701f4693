package auth

// TestUserEmail is the single operator-provisioned identity.
const TestUserEmail = "test"

// TokenInput is the submitted credential pair.
type TokenInput struct {
	Email    string
	Password string
}

// TokenOutput carries the minted session token.
type TokenOutput struct {
	AccessToken string
}
