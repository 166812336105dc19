package cache

import (
	"context"
	"time"
)

//go:generate moq -out mirror_mock.go . Mirror

// Mirror is an optional durable copy of the cache (for example Redis).
// The store writes through to it on a best-effort basis: any error is
// logged as a cache write fault and never surfaced to callers.
type Mirror interface {
	// Put stores the serialized value with the given ttl (0 = no expiry)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error

	// Remove deletes keys from the mirror
	Remove(ctx context.Context, keys ...string) error

	// Flush removes every key owned by the cache
	Flush(ctx context.Context) error
}
