package cache

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// Ensure Redis implements Cache interface
var _ Cache = (*Redis)(nil)
