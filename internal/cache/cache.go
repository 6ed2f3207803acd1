// Package cache stores serialized balance results keyed by canonical
// reaction text. Results are pure functions of their key, so entries never
// need invalidation; the TTL only bounds memory.
package cache

import (
	"context"
	"errors"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache is the port implemented by Store (redis) and Memory.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
