package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get unmarshals the value stored under key into dest.
	// found is false on a cache miss; dest is left untouched then.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys; missing keys are not an error
	Delete(ctx context.Context, keys ...string) error

	// Incr atomically increments the integer stored under key and returns the new value.
	// A missing key counts as 0.
	Incr(ctx context.Context, key string) (int64, error)

	// Ping checks the connection
	Ping(ctx context.Context) error
}
