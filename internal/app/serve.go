package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.trai.ch/base47/internal/adapters/preview" //nolint:depguard // The preview server is driven from the app layer
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions controls Serve.
type ServeOptions struct {
	Addr string
	// Watch refreshes the caches on file changes while serving.
	Watch bool
}

// Handler returns the preview HTTP handler.
func (a *App) Handler() http.Handler {
	return preview.NewHandler(previewBackend{a: a}, a.logger, a.discovery.Root(), a.cfg.BaseURL)
}

// Serve runs the preview server until ctx is done.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	addr := opts.Addr
	if addr == "" {
		addr = a.cfg.Serve.Addr
	}
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(err, "addr", addr)
	}
	return a.ServeListener(ctx, ln, opts.Watch)
}

// ServeListener runs the preview server on ln until ctx is done.
func (a *App) ServeListener(ctx context.Context, ln net.Listener, watch bool) error {
	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("serving previews on http://" + ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if watch {
		g.Go(func() error {
			return a.Watch(ctx, nil)
		})
	}

	return g.Wait()
}

type previewBackend struct {
	a *App
}

func (b previewBackend) Sets(ctx context.Context) []preview.SetView {
	byName := make(map[string][]string)
	for _, e := range b.a.ListShortcodes(ctx, true) {
		if !e.Alias {
			byName[e.Set] = append(byName[e.Set], e.Name)
		}
	}

	sets := b.a.ListSets(ctx)
	out := make([]preview.SetView, 0, len(sets))
	for _, s := range sets {
		out = append(out, preview.SetView{
			Slug:        s.Slug,
			Label:       s.Label,
			Description: s.Description,
			Version:     s.Version,
			Accent:      s.Accent,
			Thumbnail:   s.Thumbnail,
			Active:      s.Active,
			Default:     s.Default,
			Shortcodes:  byName[s.Slug],
		})
	}
	return out
}

func (b previewBackend) Page(ctx context.Context, name string) (*preview.PageView, error) {
	req := b.a.NewRequest(ctx, true)
	if _, ok := req.Shortcodes.Lookup(name); !ok {
		return nil, preview.ErrNotFound
	}

	res := b.a.Render(ctx, req, name)
	if res.Kind == domain.RenderNotFound {
		return nil, preview.ErrNotFound
	}
	return &preview.PageView{
		Title:  name,
		HTML:   res.HTML,
		Head:   req.Page.HeadTags(),
		Footer: req.Page.FooterTags(),
	}, nil
}

func (b previewBackend) Refresh(ctx context.Context) error {
	return b.a.Refresh(ctx)
}
