package cache_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/base47/internal/adapters/cache"
	"go.trai.ch/base47/internal/core/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()

	t.Run("miss on absent key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("returns a copy", func(t *testing.T) {
		value := []byte("abc")
		require.NoError(t, store.Set(ctx, "copy", value, 0))
		value[0] = 'x'
		got, err := store.Get(ctx, "copy")
		require.NoError(t, err)
		got[1] = 'y'
		again, err := store.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", []byte("v"), 0))
		require.NoError(t, store.Delete(ctx, "gone", "never-set"))
		_, err := store.Get(ctx, "gone")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestMemoryStore_Expiry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx := context.Background()
		store := cache.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "short", []byte("v"), time.Second))
		require.NoError(t, store.Set(ctx, "forever", []byte("v"), 0))

		time.Sleep(500 * time.Millisecond)
		_, err := store.Get(ctx, "short")
		require.NoError(t, err)

		// Reads do not extend the lifetime.
		time.Sleep(600 * time.Millisecond)
		_, err = store.Get(ctx, "short")
		require.ErrorIs(t, err, domain.ErrCacheMiss)

		time.Sleep(365 * 24 * time.Hour)
		_, err = store.Get(ctx, "forever")
		require.NoError(t, err)
	})
}

func TestNewStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := cache.NewStore(domain.CacheConfig{Backend: domain.CacheBackendMemory})
		require.NoError(t, err)
		assert.IsType(t, &cache.MemoryStore{}, s)
	})

	t.Run("file", func(t *testing.T) {
		s, err := cache.NewStore(domain.CacheConfig{Backend: domain.CacheBackendFile, Dir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &cache.FileStore{}, s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := cache.NewStore(domain.CacheConfig{Backend: "memcached"})
		require.ErrorContains(t, err, domain.ErrInvalidCacheBackend.Error())
	})
}
