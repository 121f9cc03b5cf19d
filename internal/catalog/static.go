package catalog

import (
	"context"
	"time"

	"humanness-tasks/internal/models"

	"github.com/jonboulle/clockwork"
)

// DefaultLatency is the simulated network delay of the static catalog.
const DefaultLatency = 500 * time.Millisecond

var defaultProducts = []models.Product{
	{ID: 1, Title: "iPhone 9", Description: "An apple mobile which is nothing like apple. Features a beautiful display, great camera, and long battery life."},
	{ID: 2, Title: "iPhone X", Description: "SIM-Free, Model A19211 6.5-inch Super Retina HD display with OLED technology."},
	{ID: 3, Title: "Samsung Universe 9", Description: "Samsung's new variant which goes beyond Galaxy to the Universe."},
	{ID: 4, Title: "OPPOF19", Description: "OPPO F19 is officially announced on April 2021."},
	{ID: 5, Title: "Huawei P30", Description: "Huawei's re-badged P30 Pro New Edition was officially unveiled yesterday in Germany."},
	{ID: 6, Title: "MacBook Pro", Description: "MacBook Pro 2021 with mini-LED display may launch between September and November."},
	{ID: 7, Title: "Samsung Galaxy Book", Description: "Samsung Galaxy Book S (2020) Laptop With Intel Lakefield Chip."},
	{ID: 8, Title: "Microsoft Surface Laptop 4", Description: "Style and speed. Stand out on HD video calls backed by Studio Mics."},
	{ID: 9, Title: "Infinix INBOOK", Description: "Infinix Inbook X1 Ci3 10th 8GB 256GB 14 Win10 Grey."},
	{ID: 10, Title: "HP Pavilion 15-DK1056WM", Description: "HP Pavilion 15-DK1056WM Gaming Laptop 10th Gen Core i5."},
}

// DefaultProducts returns a copy of the built-in catalog.
func DefaultProducts() []models.Product {
	out := make([]models.Product, len(defaultProducts))
	copy(out, defaultProducts)
	return out
}

// StaticClient serves the built-in catalog after a simulated latency.
type StaticClient struct {
	clock   clockwork.Clock
	latency time.Duration
}

// NewStaticClient creates a StaticClient.
func NewStaticClient(clock clockwork.Clock, latency time.Duration) *StaticClient {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &StaticClient{
		clock:   clock,
		latency: latency,
	}
}

// FetchCatalog returns the built-in catalog.
func (c *StaticClient) FetchCatalog(ctx context.Context) ([]models.Product, error) {
	if c.latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(c.latency):
		}
	}
	return DefaultProducts(), nil
}
