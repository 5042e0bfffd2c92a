// Package ctxdata carries request-scoped data through the context: the trace
// id assigned by the logging middleware and the authenticated caller's
// identity set by the auth middleware.
package ctxdata

import (
	"context"
)

// Identity is the authenticated caller as decoded from the access token.
type Identity struct {
	UserID string
	Role   string
}

type traceIDKey struct{}
type identityKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	return traceID, ok
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity reports the caller stored by the auth middleware; ok is false
// on unauthenticated requests.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
