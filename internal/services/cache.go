package services

import (
	"context"
	"time"
)

// Cache is the key-value store behind RouteCache. Values are the JSON
// encoding of a route.Result.
type Cache interface {
	// Ping tests the cache connection
	Ping(ctx context.Context) error

	// Set stores value under key. A zero expiration keeps it until evicted.
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Get retrieves a value by key. A missing key returns "" and no error.
	Get(ctx context.Context, key string) (string, error)

	// Close closes the cache connection
	Close() error
}
