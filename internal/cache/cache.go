// Package cache wraps the Redis client with JSON get/set helpers used for
// read-path caching. A nil *Store is valid and turns every operation into
// a no-op miss, so callers need no "is caching on" branches.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a thin JSON cache over Redis.
type Store struct {
	rdb *redis.Client
}

// New constructs a Store. rdb may not be nil; use a nil *Store to disable
// caching instead.
func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// GetJSON fetches key and unmarshals it into dest. Returns false when the
// key is absent or the store is disabled.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if s == nil {
		return false, nil
	}
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// SetJSON marshals value and stores it under key with the given TTL.
func (s *Store) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, ttl).Err()
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil {
		return nil
	}
	return s.rdb.Del(ctx, key).Err()
}
