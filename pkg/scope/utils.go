package scope

import "context"

type (
	// PayloadCtxKey keys the verified token payload in a request context.
	PayloadCtxKey struct{}
	// DataAccessCtxKey keys the resolved access tier in a request context.
	DataAccessCtxKey struct{}
)

// SetPayloadToContext sets the verified payload to context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

// GetPayloadFromContext gets the verified payload from context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

// SetDataAccessToContext sets the resolved access tier to context.
func SetDataAccessToContext(ctx context.Context, dataAccess string) context.Context {
	return context.WithValue(ctx, DataAccessCtxKey{}, dataAccess)
}

// GetDataAccessFromContext gets the resolved access tier from context.
// Falls back to DefaultDataAccess when no tier was resolved; handlers must
// never read a tier from the request body or query string.
func GetDataAccessFromContext(ctx context.Context) string {
	if dataAccess, ok := ctx.Value(DataAccessCtxKey{}).(string); ok && dataAccess != "" {
		return dataAccess
	}
	return DefaultDataAccess
}
