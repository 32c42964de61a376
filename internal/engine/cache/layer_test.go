package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adapter "go.trai.ch/base47/internal/adapters/cache"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports/mocks"
	"go.trai.ch/base47/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

func TestLayer_StoreAndLookup(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	layer := cache.NewLayer(adapter.NewMemoryStore(), logger, true, time.Hour)
	layer.Store(ctx, domain.CacheKeySets, "sig-1", []string{"a-templates", "b-templates"})

	t.Run("matching signature hits", func(t *testing.T) {
		var got []string
		require.True(t, layer.Lookup(ctx, domain.CacheKeySets, "sig-1", &got))
		assert.Equal(t, []string{"a-templates", "b-templates"}, got)
	})

	t.Run("stale signature misses", func(t *testing.T) {
		var got []string
		assert.False(t, layer.Lookup(ctx, domain.CacheKeySets, "sig-2", &got))
		assert.Nil(t, got)
	})

	t.Run("absent key misses", func(t *testing.T) {
		var got []string
		assert.False(t, layer.Lookup(ctx, domain.CacheKeyTemplates, "sig-1", &got))
	})

	t.Run("clear all drops entries", func(t *testing.T) {
		require.NoError(t, layer.ClearAll(ctx))
		var got []string
		assert.False(t, layer.Lookup(ctx, domain.CacheKeySets, "sig-1", &got))
	})
}

func TestLayer_Disabled(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCacheStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	// A disabled layer never touches the store on lookup or write.
	layer := cache.NewLayer(store, logger, false, time.Hour)
	assert.False(t, layer.Enabled())

	var got []string
	assert.False(t, layer.Lookup(ctx, domain.CacheKeySets, "sig", &got))
	layer.Store(ctx, domain.CacheKeySets, "sig", []string{"x"})

	store.EXPECT().Delete(ctx, domain.CacheKeySets, domain.CacheKeyTemplates).Return(nil)
	require.NoError(t, layer.ClearAll(ctx))
}

func TestLayer_StoreErrorsAreLogged(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCacheStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	layer := cache.NewLayer(store, logger, true, time.Minute)

	readErr := errors.New("connection refused")
	store.EXPECT().Get(ctx, domain.CacheKeySets).Return(nil, readErr)
	logger.EXPECT().Error(readErr)

	var got []string
	assert.False(t, layer.Lookup(ctx, domain.CacheKeySets, "sig", &got))

	writeErr := errors.New("disk full")
	store.EXPECT().Set(ctx, domain.CacheKeySets, gomock.Any(), time.Minute).Return(writeErr)
	logger.EXPECT().Error(writeErr)

	layer.Store(ctx, domain.CacheKeySets, "sig", []string{"x"})
}

func TestLayer_CorruptEntryMisses(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	store := adapter.NewMemoryStore()
	require.NoError(t, store.Set(ctx, domain.CacheKeySets, []byte("{not json"), 0))

	layer := cache.NewLayer(store, logger, true, 0)
	var got []string
	assert.False(t, layer.Lookup(ctx, domain.CacheKeySets, "sig", &got))
}
