package options

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/base47/internal/adapters/config" //nolint:depguard // Backend selection reads the runtime config
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the option store Graft node.
const NodeID graft.ID = "adapter.option_store"

func init() {
	graft.Register(graft.Node[ports.OptionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.OptionStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.Options)
		},
	})
}

// NewStore builds the store selected by the options backend setting.
func NewStore(cfg domain.OptionsConfig) (ports.OptionStore, error) {
	switch cfg.Backend {
	case domain.OptionsBackendFile, "":
		return NewFileStore(cfg.Path), nil
	case domain.OptionsBackendSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, zerr.With(domain.ErrInvalidOptionsBackend, "backend", cfg.Backend)
	}
}
