package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevoker_RevokeUntilExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryRevoker()
	r.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "jti-1", now.Add(time.Hour)))

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = r.IsRevoked(ctx, "jti-2")
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, _ = r.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
}

func TestMemoryRevoker_IgnoresExpiredTokens(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryRevoker()
	r.now = func() time.Time { return now }

	require.NoError(t, r.Revoke(context.Background(), "old", now.Add(-time.Minute)))
	assert.Equal(t, 0, r.Sweep())
}

func TestMemoryRevoker_Sweep(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryRevoker()
	r.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "short", now.Add(time.Minute)))
	require.NoError(t, r.Revoke(ctx, "long", now.Add(time.Hour)))

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 1, r.Sweep())

	revoked, _ := r.IsRevoked(ctx, "long")
	assert.True(t, revoked)
}
