//go:build api

package testdb

import (
	"context"
	"time"

	"humanness-tasks/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer wraps a Redis testcontainer for API tests.
type RedisContainer struct {
	Container testcontainers.Container
	URI       string
	Cache     *cache.Redis
	Client    *redis.Client
}

// SetupRedis starts a Redis testcontainer and opens the session cache on it.
func SetupRedis(ctx context.Context) (*RedisContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	c := cache.NewRedis(endpoint)

	return &RedisContainer{
		Container: container,
		URI:       endpoint,
		Cache:     c,
		Client:    c.Client(),
	}, nil
}

// Cleanup closes the cache and terminates the container.
func (rc *RedisContainer) Cleanup(ctx context.Context) error {
	if rc.Cache != nil {
		rc.Cache.Close()
	}
	if rc.Container != nil {
		return rc.Container.Terminate(ctx)
	}
	return nil
}

// FlushDB drops every session and cached catalog.
func (rc *RedisContainer) FlushDB(ctx context.Context) error {
	return rc.Client.FlushDB(ctx).Err()
}
