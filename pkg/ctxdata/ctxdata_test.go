package ctxdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityRoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{UserID: "42", Role: "teacher"})

	identity, ok := GetIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, "42", identity.UserID)
	assert.Equal(t, "teacher", identity.Role)
}

func TestIdentityMissing(t *testing.T) {
	_, ok := GetIdentity(context.Background())
	assert.False(t, ok)
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")

	traceID, ok := GetTraceID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trace-1", traceID)

	_, ok = GetTraceID(context.Background())
	assert.False(t, ok)
}
