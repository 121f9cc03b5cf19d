package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// sweepInterval is the minimum time between sweeps of expired entries.
const sweepInterval = time.Minute

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is a process-local Cache used when Redis is not configured. Values
// are stored JSON-encoded so callers see the same copy semantics as Redis.
type Memory struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	clock     clockwork.Clock
	lastSweep time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory(clock clockwork.Clock) *Memory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Memory{
		entries:   make(map[string]memoryEntry),
		clock:     clock,
		lastSweep: clock.Now(),
	}
}

// Set stores a value in cache with TTL. At most once per sweepInterval it
// also drops every expired entry, so keys that are never read again do not
// accumulate.
func (m *Memory) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	now := m.clock.Now()
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= sweepInterval {
		for k, e := range m.entries {
			if e.expired(now) {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}
	m.entries[key] = entry
	return nil
}

// Get retrieves a value from cache. Expired keys are reported missing.
func (m *Memory) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if entry.expired(m.clock.Now()) {
		m.evict(key, entry)
		return false, nil
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return true, nil
}

// evict deletes key if it still holds seen. A concurrent Set may have
// replaced it since the read.
func (m *Memory) evict(key string, seen memoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.entries[key]; ok && current.expiresAt.Equal(seen.expiresAt) {
		delete(m.entries, key)
	}
}

// Delete removes a key from cache.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}
