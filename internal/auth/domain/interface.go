package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// TokenBlacklist tracks revoked refresh-token ids until their natural
// expiry. Implementations must be safe for concurrent use.
type TokenBlacklist interface {
	// Revoke marks tokenID as revoked. Revoking an already-revoked id is
	// a no-op.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// RevokeIfAbsent atomically inserts tokenID and reports whether this
	// call performed the insert. Concurrent callers for the same id see
	// exactly one true result.
	RevokeIfAbsent(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error)

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
