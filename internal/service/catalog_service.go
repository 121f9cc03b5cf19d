package service

import (
	"context"

	"humanness-tasks/internal/catalog"
	"humanness-tasks/internal/models"
)

// CatalogService exposes the product catalog.
type CatalogService struct {
	client catalog.Client
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(client catalog.Client) *CatalogService {
	return &CatalogService{client: client}
}

// Catalog returns every product in catalog order.
func (s *CatalogService) Catalog(ctx context.Context) (*models.ProductListResponse, error) {
	products, err := s.client.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ProductListResponse{Products: products}, nil
}
