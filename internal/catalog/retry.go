package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/models"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig controls how a RetryingClient retries failed fetches.
type RetryConfig struct {
	// AttemptTimeout bounds each fetch attempt.
	AttemptTimeout time.Duration
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// InitialInterval is the delay before the first retry.
	InitialInterval time.Duration
	// MaxInterval caps the delay between retries.
	MaxInterval time.Duration
}

// DefaultRetryConfig is three attempts of two seconds each.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		AttemptTimeout:  2 * time.Second,
		MaxAttempts:     3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// RetryingClient adds per-attempt timeouts and exponential backoff to a
// Client. When every attempt fails it returns ErrCatalogUnavailable.
type RetryingClient struct {
	next Client
	cfg  RetryConfig
}

// NewRetryingClient wraps next.
func NewRetryingClient(next Client, cfg RetryConfig) *RetryingClient {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingClient{
		next: next,
		cfg:  cfg,
	}
}

// FetchCatalog fetches from the wrapped client, retrying transient failures.
func (c *RetryingClient) FetchCatalog(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	attempt := 0

	operation := func() error {
		attempt++
		attemptCtx := ctx
		if c.cfg.AttemptTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, c.cfg.AttemptTimeout)
			defer cancel()
		}

		result, err := c.next.FetchCatalog(attemptCtx)
		if err != nil {
			// The caller gave up; retrying cannot help.
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			log.Printf("Catalog fetch attempt %d/%d failed: %v", attempt, c.cfg.MaxAttempts, err)
			return err
		}
		if len(result) == 0 {
			return fmt.Errorf("empty catalog")
		}

		products = result
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(c.policy(), ctx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogUnavailable, err)
	}

	return products, nil
}

func (c *RetryingClient) policy() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if c.cfg.InitialInterval > 0 {
		exp.InitialInterval = c.cfg.InitialInterval
	}
	if c.cfg.MaxInterval > 0 {
		exp.MaxInterval = c.cfg.MaxInterval
	}
	exp.MaxElapsedTime = 0
	exp.Reset()

	return backoff.WithMaxRetries(exp, uint64(c.cfg.MaxAttempts-1))
}
