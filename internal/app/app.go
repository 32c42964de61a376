// Package app implements the application layer for base47.
package app

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/base47/internal/adapters/page" //nolint:depguard // Requests collect assets into a page
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/base47/internal/engine/activeset"
	"go.trai.ch/base47/internal/engine/assets"
	"go.trai.ch/base47/internal/engine/cache"
	"go.trai.ch/base47/internal/engine/discovery"
	"go.trai.ch/base47/internal/engine/manifest"
	"go.trai.ch/base47/internal/engine/render"
	"go.trai.ch/base47/internal/engine/settings"
	"go.trai.ch/base47/internal/engine/shortcode"
)

// WatcherFactory creates a fresh watcher for each watch session.
type WatcherFactory func() (ports.Watcher, error)

// Deps groups the adapters the App is built from.
type Deps struct {
	Config   *domain.Config
	Logger   ports.Logger
	LogFile  ports.LogFile
	Cache    ports.CacheStore
	Options  ports.OptionStore
	Signer   ports.Signer
	Minifier ports.Minifier
	Tracer   trace.Tracer
	Watchers WatcherFactory
}

// App represents the main application logic.
type App struct {
	cfg      *domain.Config
	logger   ports.Logger
	logFile  ports.LogFile
	watchers WatcherFactory

	discovery *discovery.Discovery
	settings  *settings.Settings
	active    *activeset.Registry
	manifests *manifest.Engine
	loader    *assets.Loader
	renderer  *render.Renderer
	registrar *shortcode.Registrar

	closers []func() error
}

// New wires the engines over the given adapters.
func New(d Deps) *App {
	layer := cache.NewLayer(d.Cache, d.Logger, d.Config.Cache.Enabled, d.Config.Cache.TTL)
	disc := discovery.New(d.Config.ThemesRoot, d.Config.BaseURL, d.Signer, layer, d.Logger)

	s := settings.New(d.Options, d.Logger, d.Config.DefaultSet)
	active := activeset.New(s, d.Logger)
	manifests := manifest.New(s, d.Logger)
	loader := assets.New(s, active, manifests, d.Logger)

	renderer := render.New(s, active, manifests, loader, d.Minifier, d.Logger, render.Options{
		AddVersion: d.Config.Render.AddVersion,
		MaxDepth:   d.Config.Render.MaxDepth,
		Minify:     d.Config.Render.Minify,
	})
	if d.Tracer != nil {
		renderer.WithTracer(d.Tracer)
	}

	return &App{
		cfg:       d.Config,
		logger:    d.Logger,
		logFile:   d.LogFile,
		watchers:  d.Watchers,
		discovery: disc,
		settings:  s,
		active:    active,
		manifests: manifests,
		loader:    loader,
		renderer:  renderer,
		registrar: shortcode.NewRegistrar(renderer, active, d.Logger),
	}
}

// OnClose registers fn to run when the App is closed.
func (a *App) OnClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close releases the adapters registered with OnClose, last first.
func (a *App) Close() error {
	var errs error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = errors.Join(errs, a.closers[i]())
	}
	a.closers = nil
	return errs
}

// Config returns the runtime configuration.
func (a *App) Config() *domain.Config {
	return a.cfg
}

// Request is the state of one render or command: a discovery session,
// the shortcode table built from it and the page collecting assets.
type Request struct {
	Session    *discovery.Session
	Shortcodes *shortcode.Table
	Page       *page.Collector
}

// NewRequest starts a request. With includeInactive set, shortcodes of
// inactive sets are registered too; they still render the inactive marker.
func (a *App) NewRequest(ctx context.Context, includeInactive bool) *Request {
	sess := a.discovery.NewSession()
	return &Request{
		Session:    sess,
		Shortcodes: a.registrar.Build(ctx, sess, includeInactive),
		Page:       page.NewCollector(),
	}
}

func (r *Request) scope() render.Scope {
	return render.Scope{
		Session:    r.Session,
		Assets:     r.Page,
		Shortcodes: r.Shortcodes,
	}
}
