package blacklist

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RevokeAndCheck(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", expiresAt))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Revoking again is a no-op.
	require.NoError(t, store.Revoke(ctx, "jti-1", expiresAt))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryStore_RevokeIfAbsent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	inserted, err := store.RevokeIfAbsent(ctx, "jti-1", expiresAt)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.RevokeIfAbsent(ctx, "jti-1", expiresAt)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	store.now = func() time.Time { return now }

	expiresAt := base.Add(time.Minute)
	require.NoError(t, store.Revoke(ctx, "jti-1", expiresAt))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Past the token's natural expiry the entry no longer matters; the
	// codec's expiry check rejects the token on its own.
	now = base.Add(2 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	// And the slot can be won again.
	inserted, err := store.RevokeIfAbsent(ctx, "jti-1", now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestMemoryStore_ExpiredInsertIsDropped(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	inserted, err := store.RevokeIfAbsent(ctx, "jti-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, inserted)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_ConcurrentRevokeIfAbsent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	const callers = 64

	var wg sync.WaitGroup
	wins := make([]bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			won, err := store.RevokeIfAbsent(ctx, "contested-jti", expiresAt)
			assert.NoError(t, err)
			wins[i] = won
		}(i)
	}
	wg.Wait()

	var winners int
	for _, won := range wins {
		if won {
			winners++
		}
	}

	assert.Equal(t, 1, winners)
}
