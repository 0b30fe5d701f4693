// Package engine implements the hazard.Requester boundary as an HTTP client
// for the computation engine. Every data query is forwarded as-is; the only
// state kept here is a lazily-built handle on the hazard array store, used to
// answer "does this resource exist" before asking the engine to render it.
package engine

import (
	"net/http"
	"time"

	"physrisk-api/internal/hazard"
	"physrisk-api/pkg/log"
	"physrisk-api/pkg/zarr"
)

const resetTimeout = 10 * time.Second

// StoreProvider builds the hazard array store handle on first use. A nil
// provider disables the existence probe and defers entirely to the engine.
type StoreProvider func() (*zarr.Store, error)

type implRequester struct {
	l       log.Logger
	baseURL string
	client  *http.Client
	store   *storeCache
}

// New creates a Requester forwarding to the engine at baseURL. timeout bounds
// one forwarded request end to end; rendering a large array can take minutes,
// so callers should configure it generously.
func New(l log.Logger, baseURL string, timeout time.Duration, provider StoreProvider) hazard.Requester {
	return &implRequester{
		l:       l,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		store:   newStoreCache(provider),
	}
}
