package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks humanness-tasks/internal/cache Cache

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a value in cache with TTL. A zero TTL keeps the key until deleted.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get retrieves a value from cache. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Delete removes a key from cache.
	Delete(ctx context.Context, key string) error
}

// Ensure implementations satisfy the Cache interface
var (
	_ Cache = (*Redis)(nil)
	_ Cache = (*Memory)(nil)
)
