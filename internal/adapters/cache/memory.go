// Package cache implements the key-value stores behind the discovery cache.
package cache

import (
	"context"
	"slices"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
)

var _ ports.CacheStore = (*MemoryStore)(nil)

// MemoryStore keeps entries in process memory.
type MemoryStore struct {
	items *ttlcache.Cache[string, []byte]
}

// NewMemoryStore creates an empty in-memory store. Reads do not extend an
// entry's lifetime.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: ttlcache.New(ttlcache.WithDisableTouchOnHit[string, []byte]()),
	}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	item := s.items.Get(key)
	if item == nil {
		return nil, domain.ErrCacheMiss
	}
	return slices.Clone(item.Value()), nil
}

// Set stores value under key for ttl. A ttl of zero or less never expires.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	s.items.Set(key, slices.Clone(value), ttl)
	return nil
}

// Delete removes the given keys.
func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.items.Delete(key)
	}
	return nil
}
