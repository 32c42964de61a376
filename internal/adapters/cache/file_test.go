package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/base47/internal/adapters/cache"
	"go.trai.ch/base47/internal/core/domain"
)

func TestFileStore_PutGet(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := cache.NewFileStore(dir).WithClock(func() time.Time { return now })

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("put and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.CacheKeySets, []byte(`{"a":1}`), time.Hour))

		got, err := store.Get(ctx, domain.CacheKeySets)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("expired", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "ttl", []byte("x"), time.Minute))
		now = now.Add(time.Hour)
		_, err := store.Get(ctx, "ttl")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "del", []byte("x"), 0))
		require.NoError(t, store.Delete(ctx, "del", "absent"))
		_, err := store.Get(ctx, "del")
		require.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestFileStore_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := cache.NewFileStore(dir)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	//nolint:gosec // test fixture
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{ invalid json"), 0o600))

	_, err = store.Get(ctx, "k")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}
