package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a snapshot key is absent.
var ErrMiss = redis.Nil

// SnapshotStore keeps last-good payloads in Redis so reads can survive a
// database outage.
type SnapshotStore struct {
	client *redis.Client
}

// NewSnapshotStore wraps a Redis client. A nil client yields a store whose
// reads always miss and whose writes are no-ops.
func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

// Get fetches a stored payload. Returns ErrMiss when the key is absent.
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.client == nil {
		return nil, ErrMiss
	}
	return s.client.Get(ctx, key).Bytes()
}

// Set stores a payload with the given TTL. A zero TTL keeps the key until
// the next write.
func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Delete drops a stored payload.
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, key).Err()
}
