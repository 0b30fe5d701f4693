package hazard

import "errors"

var (
	// ErrResourceNotFound is returned when a requested resource path does not
	// exist in the hazard array store.
	ErrResourceNotFound = errors.New("resource not found in hazard store")

	// ErrEngineRequest is returned when the computation engine rejected or
	// failed a forwarded request.
	ErrEngineRequest = errors.New("engine request failed")
)
