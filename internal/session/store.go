package session

import (
	"context"
	"fmt"
	"time"

	"humanness-tasks/internal/cache"
	apperrors "humanness-tasks/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks humanness-tasks/internal/session Store

// Store persists flow sessions between requests.
type Store interface {
	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, id string) (*FlowSession, error)
	// Save writes the session and refreshes its expiry.
	Save(ctx context.Context, s *FlowSession) error
	// Delete discards the session.
	Delete(ctx context.Context, id string) error
}

// cacheStore implements Store on top of a Cache.
type cacheStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewStore creates a Store that keeps sessions in c for ttl after their last save.
func NewStore(c cache.Cache, ttl time.Duration) Store {
	return &cacheStore{
		cache: c,
		ttl:   ttl,
	}
}

func (s *cacheStore) Get(ctx context.Context, id string) (*FlowSession, error) {
	var fs FlowSession
	found, err := s.cache.Get(ctx, cache.SessionCacheKey(id), &fs)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, apperrors.ErrSessionNotFound
	}
	return &fs, nil
}

func (s *cacheStore) Save(ctx context.Context, fs *FlowSession) error {
	if err := s.cache.Set(ctx, cache.SessionCacheKey(fs.ID), fs, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *cacheStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, cache.SessionCacheKey(id))
}
