package cache

import (
	"context"
	"time"
)

// Cache stores opaque values by key with a time-to-live.
type Cache interface {
	// Get returns the value and true on a hit; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
