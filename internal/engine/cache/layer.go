// Package cache keeps discovery results keyed by a filesystem signature.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
)

// Entry is the stored form of a cached scan.
type Entry struct {
	Signature string          `json:"signature"`
	Payload   json.RawMessage `json:"payload"`
}

// Layer wraps a CacheStore with signature checks and the global cache toggle.
// Store failures never reach callers; they are logged and treated as misses.
type Layer struct {
	store   ports.CacheStore
	logger  ports.Logger
	enabled bool
	ttl     time.Duration
}

// NewLayer creates a cache layer over store.
func NewLayer(store ports.CacheStore, logger ports.Logger, enabled bool, ttl time.Duration) *Layer {
	return &Layer{
		store:   store,
		logger:  logger,
		enabled: enabled,
		ttl:     ttl,
	}
}

// Enabled reports whether lookups and writes reach the store.
func (l *Layer) Enabled() bool {
	return l.enabled
}

// Lookup decodes the payload stored under key into out when its signature matches.
// It returns false on a miss, a stale signature, an undecodable entry or a disabled cache.
func (l *Layer) Lookup(ctx context.Context, key, signature string, out any) bool {
	if !l.enabled {
		return false
	}

	raw, err := l.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			l.logger.Error(err)
		}
		return false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return false
	}
	if entry.Signature != signature {
		return false
	}
	return json.Unmarshal(entry.Payload, out) == nil
}

// Store writes payload under key tagged with signature.
func (l *Layer) Store(ctx context.Context, key, signature string, payload any) {
	if !l.enabled {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		l.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key))
		return
	}
	data, err := json.Marshal(Entry{Signature: signature, Payload: body})
	if err != nil {
		l.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key))
		return
	}

	if err := l.store.Set(ctx, key, data, l.ttl); err != nil {
		l.logger.Error(err)
	}
}

// ClearAll drops every discovery cache key. It runs even when the cache is disabled
// so a later re-enable cannot serve entries written before.
func (l *Layer) ClearAll(ctx context.Context) error {
	return l.store.Delete(ctx, domain.CacheKeys()...)
}
