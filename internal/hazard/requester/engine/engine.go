package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgErrors "github.com/friendsofgo/errors"

	"physrisk-api/internal/hazard"
)

const maxErrorBodyBytes = 1024

// Get forwards a data query envelope to the engine operation named by
// requestID and returns the raw JSON reply without reframing it.
func (r *implRequester) Get(ctx context.Context, requestID string, request map[string]any) ([]byte, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "internal.hazard.requester.engine.Get: marshal request")
	}
	return r.post(ctx, requestID, body)
}

// GetImage asks the engine to render an array or one tile of its pyramid.
// When the array store is reachable the resource is probed first, so a
// missing path fails fast with ErrResourceNotFound instead of a render error.
func (r *implRequester) GetImage(ctx context.Context, req hazard.ImageRequest) ([]byte, error) {
	store, err := r.store.get()
	if err != nil {
		// The probe is an optimization; the engine remains the authority.
		r.l.Warnf(ctx, "internal.hazard.requester.engine.GetImage: array store unavailable, skipping probe: %v", err)
	} else if store != nil {
		exists, err := store.Exists(ctx, req.Resource)
		if err != nil {
			r.l.Warnf(ctx, "internal.hazard.requester.engine.GetImage: probe failed for %q: %v", req.Resource, err)
		} else if !exists {
			return nil, fmt.Errorf("%w: %s", hazard.ErrResourceNotFound, req.Resource)
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "internal.hazard.requester.engine.GetImage: marshal request")
	}
	return r.post(ctx, "get_image", body)
}

// ResetCache drops the cached store handle and tells the engine to drop its
// own caches. The engine call is fire-and-forget so a slow or absent engine
// never blocks the reset response.
func (r *implRequester) ResetCache(ctx context.Context) {
	r.store.reset()

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), resetTimeout)
		defer cancel()

		if _, err := r.post(ctx, "reset", []byte(`{}`)); err != nil {
			r.l.Warnf(ctx, "internal.hazard.requester.engine.ResetCache: engine reset failed: %v", err)
		}
	}()
}

func (r *implRequester) post(ctx context.Context, operation string, body []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", r.baseURL, operation)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "internal.hazard.requester.engine.post: build request for %s", operation)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", hazard.ErrEngineRequest, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("%w: %s returned %d: %s", hazard.ErrEngineRequest, operation, resp.StatusCode, snippet)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read response: %v", hazard.ErrEngineRequest, operation, err)
	}

	r.l.Debugf(ctx, "internal.hazard.requester.engine.post: %s completed in %s (%d bytes)", operation, time.Since(start), len(data))
	return data, nil
}
