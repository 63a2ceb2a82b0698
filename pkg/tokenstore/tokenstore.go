// Package tokenstore keeps a Redis-backed denylist of revoked token IDs.
// Entries expire together with the token they revoke, so the set never
// outgrows the set of still-valid tokens.
package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store records revoked JWT IDs (jti claims) in Redis.
type Store struct {
	rdb *redis.Client
}

// New creates a Store on top of an existing Redis client.
func New(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
	}
}

func key(jti string) string {
	return "revoked:" + jti
}

// Revoke marks a token ID as revoked for the given TTL. The TTL should be
// the token's remaining lifetime; once the token has expired on its own the
// entry is pointless and Redis drops it.
func (s *Store) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	if err := s.rdb.Set(ctx, key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", jti, err)
	}
	return nil
}

// IsRevoked reports whether a token ID has been revoked.
func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token %s: %w", jti, err)
	}
	return n > 0, nil
}
