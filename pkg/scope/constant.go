package scope

import "time"

const (
	// TokenExpirationDuration is the default JWT token expiration (1 week).
	TokenExpirationDuration = time.Hour * 24 * 7

	// DataAccessOSC is the access tier embedded for the provisioned test identity.
	DataAccessOSC = "osc"
	// DefaultDataAccess is the tier resolved when no valid token is presented.
	DefaultDataAccess = DataAccessOSC
)
