package engine

import (
	"sync"

	"physrisk-api/pkg/zarr"
)

// storeCache holds the single array store handle. The handle is built on
// first use and kept until reset drops it, so a bucket repointed at runtime
// is picked up on the next request after a reset.
type storeCache struct {
	mu       sync.Mutex
	provider StoreProvider
	store    *zarr.Store
}

func newStoreCache(provider StoreProvider) *storeCache {
	return &storeCache{provider: provider}
}

// get returns the cached handle, building it if needed. Returns (nil, nil)
// when no provider is configured.
func (c *storeCache) get() (*zarr.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.provider == nil {
		return nil, nil
	}
	if c.store != nil {
		return c.store, nil
	}

	store, err := c.provider()
	if err != nil {
		return nil, err
	}
	c.store = store
	return store, nil
}

func (c *storeCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = nil
}
