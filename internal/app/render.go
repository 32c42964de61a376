package app

import (
	"context"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/zerr"
)

// Page is a rendered fragment plus the tags of the assets it enqueued.
type Page struct {
	domain.RenderResult
	Assets []domain.Asset
	Head   string
	Footer string
}

// RenderOptions controls RenderShortcode.
type RenderOptions struct {
	// IncludeInactive registers the shortcodes of inactive sets.
	IncludeInactive bool
}

// RenderShortcode renders the template bound to a shortcode name.
// Legacy aliases render exactly like their canonical names.
func (a *App) RenderShortcode(ctx context.Context, name string, opts RenderOptions) (*Page, error) {
	req := a.NewRequest(ctx, opts.IncludeInactive)
	if _, ok := req.Shortcodes.Lookup(name); !ok {
		return nil, zerr.With(domain.ErrShortcodeNotFound, "shortcode", name)
	}
	return a.finish(req, req.Shortcodes.Invoke(ctx, req.scope(), name, 0))
}

// RenderTemplate renders file from set. An empty set searches the default set,
// then the active sets, then all sets.
func (a *App) RenderTemplate(ctx context.Context, set, file string) (*Page, error) {
	req := a.NewRequest(ctx, false)
	return a.finish(req, a.renderer.Render(ctx, req.scope(), set, file, 0))
}

// Render renders within an existing request, so several fragments can share
// one page and one discovery session.
func (a *App) Render(ctx context.Context, req *Request, name string) domain.RenderResult {
	return req.Shortcodes.Invoke(ctx, req.scope(), name, 0)
}

func (a *App) finish(req *Request, res domain.RenderResult) (*Page, error) {
	if res.Kind == domain.RenderNotFound {
		return nil, zerr.With(zerr.With(domain.ErrTemplateNotFound, "set", res.Set), "file", res.File)
	}
	return &Page{
		RenderResult: res,
		Assets:       req.Page.Assets(),
		Head:         req.Page.HeadTags(),
		Footer:       req.Page.FooterTags(),
	}, nil
}
