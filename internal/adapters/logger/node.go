package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/base47/internal/adapters/config" //nolint:depguard // Log destinations come from the runtime config
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// FileNodeID is the unique identifier for the log file Graft node.
	FileNodeID graft.ID = "adapter.log_file"
)

func init() {
	graft.Register(graft.Node[ports.LogFile]{
		ID:        FileNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.LogFile, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewFile(cfg.Log.File, cfg.Log.MaxLines), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, FileNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			file, err := graft.Dep[ports.LogFile](ctx)
			if err != nil {
				return nil, err
			}

			lg := New().(*Logger)
			lg.SetJSON(cfg.Log.JSON)
			if f, ok := file.(*File); ok && cfg.Log.File != "" {
				lg.SetFile(f)
			}
			return lg, nil
		},
	})
}
