package app

import (
	"context"
	"io"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/base47/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/adapters/minify"    //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/adapters/options"   //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the CLI needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			logger.NodeID,
			logger.FileNodeID,
			cache.NodeID,
			options.NodeID,
			fs.SignerNodeID,
			minify.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	logFile, err := graft.Dep[ports.LogFile](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	opts, err := graft.Dep[ports.OptionStore](ctx)
	if err != nil {
		return nil, err
	}
	signer, err := graft.Dep[ports.Signer](ctx)
	if err != nil {
		return nil, err
	}
	minifier, err := graft.Dep[ports.Minifier](ctx)
	if err != nil {
		return nil, err
	}
	tp, err := graft.Dep[trace.TracerProvider](ctx)
	if err != nil {
		return nil, err
	}
	watchers, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	a := New(Deps{
		Config:   cfg,
		Logger:   log,
		LogFile:  logFile,
		Cache:    store,
		Options:  opts,
		Signer:   signer,
		Minifier: minifier,
		Tracer:   telemetry.Tracer(tp),
		Watchers: WatcherFactory(watchers),
	})

	for _, res := range []any{store, opts} {
		if c, ok := res.(io.Closer); ok {
			a.OnClose(c.Close)
		}
	}
	if s, ok := tp.(shutdowner); ok {
		a.OnClose(func() error { return s.Shutdown(context.WithoutCancel(ctx)) })
	}
	return a, nil
}
