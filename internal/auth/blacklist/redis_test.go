package blacklist

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_RevokeAndCheck(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", expiresAt))
	require.NoError(t, store.Revoke(ctx, "jti-1", expiresAt))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisStore_RevokeIfAbsent(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	inserted, err := store.RevokeIfAbsent(ctx, "jti-1", expiresAt)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.RevokeIfAbsent(ctx, "jti-1", expiresAt)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestRedisStore_EntryExpiresWithToken(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStore_PastExpiryIsNoop(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	inserted, err := store.RevokeIfAbsent(ctx, "jti-2", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, inserted)
}
