package config

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ConfigNodeID is the unique identifier for the loaded configuration Graft node.
	ConfigNodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			overrides := OverridesFrom(ctx)
			cfg, err := loader.Load(overrides.Path)
			if err != nil {
				return nil, err
			}
			Apply(cfg, overrides)
			return cfg, nil
		},
	})
}

// Apply copies non-empty overrides onto cfg.
func Apply(cfg *domain.Config, o Overrides) {
	if o.ThemesRoot != "" {
		cfg.ThemesRoot = filepath.Clean(o.ThemesRoot)
	}
	if o.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(o.BaseURL, "/")
	}
	if o.JSON {
		cfg.Log.JSON = true
	}
	if o.Trace {
		cfg.Log.Trace = true
	}
}
