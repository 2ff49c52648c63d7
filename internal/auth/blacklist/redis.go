package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "blacklist:"

// RedisStore keeps revoked refresh-token ids in Redis. Each entry carries
// a TTL equal to the time left until the token's natural expiry, so Redis
// evicts it exactly when the codec's own expiry check takes over.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist revoke: %w", err)
	}

	return nil
}

func (s *RedisStore) RevokeIfAbsent(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already past natural expiry; nothing to store and nothing to win.
		return true, nil
	}

	inserted, err := s.client.SetNX(ctx, keyPrefix+tokenID, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist revoke: %w", err)
	}

	return inserted, nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist check: %w", err)
	}

	return n > 0, nil
}
