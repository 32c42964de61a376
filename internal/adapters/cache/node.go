package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/redis/go-redis/v9"
	"go.trai.ch/base47/internal/adapters/config" //nolint:depguard // Backend selection reads the runtime config
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.Cache)
		},
	})
}

// NewStore builds the store selected by the cache backend setting.
func NewStore(cfg domain.CacheConfig) (ports.CacheStore, error) {
	switch cfg.Backend {
	case domain.CacheBackendMemory, "":
		return NewMemoryStore(), nil
	case domain.CacheBackendFile:
		return NewFileStore(cfg.Dir), nil
	case domain.CacheBackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return NewRedisStore(rdb, cfg.RedisPrefix), nil
	default:
		return nil, zerr.With(domain.ErrInvalidCacheBackend, "backend", cfg.Backend)
	}
}
