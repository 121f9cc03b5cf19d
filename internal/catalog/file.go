package catalog

import (
	"context"
	"fmt"
	"os"

	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/models"

	"gopkg.in/yaml.v3"
)

// fileCatalog is the YAML layout of a catalog file.
type fileCatalog struct {
	Products []models.Product `yaml:"products"`
}

// FileClient reads the catalog from a YAML file on every fetch.
type FileClient struct {
	path string
}

// NewFileClient creates a FileClient for path.
func NewFileClient(path string) *FileClient {
	return &FileClient{path: path}
}

// FetchCatalog reads and parses the catalog file.
func (c *FileClient) FetchCatalog(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog. An empty catalog is unavailable.
func Parse(data []byte) ([]models.Product, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if len(fc.Products) == 0 {
		return nil, fmt.Errorf("%w: catalog file has no products", apperrors.ErrCatalogUnavailable)
	}

	seen := make(map[int]bool, len(fc.Products))
	for _, p := range fc.Products {
		if seen[p.ID] {
			return nil, fmt.Errorf("parse catalog: duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
	}

	return fc.Products, nil
}
