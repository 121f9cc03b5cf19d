// Package catalog supplies the product descriptions used as reading material.
package catalog

import (
	"context"

	"humanness-tasks/internal/models"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks humanness-tasks/internal/catalog Client

// Client defines the interface for fetching the product catalog.
type Client interface {
	// FetchCatalog returns the ordered product catalog.
	FetchCatalog(ctx context.Context) ([]models.Product, error)
}

// Ensure implementations satisfy the Client interface
var (
	_ Client = (*StaticClient)(nil)
	_ Client = (*FileClient)(nil)
	_ Client = (*RetryingClient)(nil)
	_ Client = (*CachedClient)(nil)
)
