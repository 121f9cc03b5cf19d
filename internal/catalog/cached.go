package catalog

import (
	"context"
	"log"
	"time"

	"humanness-tasks/internal/cache"
	"humanness-tasks/internal/models"
)

// CachedClient serves the catalog from a cache, falling back to the wrapped
// client on a miss. Cache failures never fail a fetch.
type CachedClient struct {
	next  Client
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedClient wraps next with cache.
func NewCachedClient(next Client, c cache.Cache, ttl time.Duration) *CachedClient {
	return &CachedClient{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

// FetchCatalog returns the cached catalog or fetches and caches it.
func (c *CachedClient) FetchCatalog(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	found, err := c.cache.Get(ctx, cache.CatalogCacheKey(), &cached)
	if err != nil {
		log.Printf("Catalog cache read failed: %v", err)
	}
	if found && len(cached) > 0 {
		return cached, nil
	}

	products, err := c.next.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, cache.CatalogCacheKey(), products, c.ttl); err != nil {
		log.Printf("Catalog cache write failed: %v", err)
	}

	return products, nil
}
