package scope

import "github.com/golang-jwt/jwt/v5"

// Payload represents the JWT token claims. DataAccess is the access-tier tag
// gating which partitions of backend data are visible to the caller.
type Payload struct {
	jwt.RegisteredClaims
	DataAccess string `json:"data_access,omitempty"`
}

// implManager implements Manager.
type implManager struct {
	secretKey string
}
