package hazard

import "context"

// Requester is the boundary to the hazard computation engine. The edge layer
// never computes indicators or renders pixels itself; it authenticates,
// authorizes and routes, then hands the request over.
type Requester interface {
	// Get forwards a data query envelope to the engine operation named by
	// requestID and returns the raw JSON reply.
	Get(ctx context.Context, requestID string, request map[string]any) ([]byte, error)

	// GetImage asks the engine to render an array (or one tile of its
	// pyramid) and returns the binary image.
	GetImage(ctx context.Context, req ImageRequest) ([]byte, error)

	// ResetCache drops cached singleton state (the array store handle and
	// the engine's own caches). Fire-and-forget: in-flight consumers may
	// briefly observe stale state.
	ResetCache(ctx context.Context)
}
