// Package render turns one template file into an embeddable fragment.
package render

import (
	"context"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/base47/internal/engine/activeset"
	"go.trai.ch/base47/internal/engine/assets"
	"go.trai.ch/base47/internal/engine/manifest"
	"go.trai.ch/base47/internal/engine/markup"
	"go.trai.ch/base47/internal/engine/settings"
	"go.trai.ch/zerr"
)

// Session yields the discovered sets and templates of one request.
type Session interface {
	activeset.SetSource
	TemplateList(ctx context.Context, force bool) domain.TemplateList
}

// Expander replaces nested shortcodes in a rendered fragment.
type Expander interface {
	Expand(ctx context.Context, scope Scope, html string, depth int) string
	HasShortcodes(html string) bool
}

// Scope is the request state shared by a top-level render and its nested renders.
type Scope struct {
	Session Session
	// Assets receives the stylesheets and scripts of every rendered set. Optional.
	Assets ports.AssetRegistry
	// Shortcodes expands nested shortcodes. Optional.
	Shortcodes Expander
}

// Options configures a Renderer.
type Options struct {
	AddVersion bool
	MaxDepth   int
	Minify     bool
}

// Renderer runs the render steps: resolve, authorize, read, strip, rewrite,
// expand and enqueue.
type Renderer struct {
	settings  *settings.Settings
	active    *activeset.Registry
	manifests *manifest.Engine
	loader    *assets.Loader
	minifier  ports.Minifier
	logger    ports.Logger
	tracer    trace.Tracer
	now       func() time.Time
	opts      Options
}

// New creates a Renderer.
func New(
	s *settings.Settings,
	active *activeset.Registry,
	manifests *manifest.Engine,
	loader *assets.Loader,
	minifier ports.Minifier,
	logger ports.Logger,
	opts Options,
) *Renderer {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = domain.DefaultMaxDepth
	}
	return &Renderer{
		settings:  s,
		active:    active,
		manifests: manifests,
		loader:    loader,
		minifier:  minifier,
		logger:    logger,
		tracer:    otel.Tracer("go.trai.ch/base47"),
		now:       time.Now,
		opts:      opts,
	}
}

// WithTracer sets the tracer used for render spans.
func (r *Renderer) WithTracer(tracer trace.Tracer) *Renderer {
	r.tracer = tracer
	return r
}

// WithClock sets the clock that supplies the ver parameter.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// Render produces the fragment of file. An empty set searches the default set,
// then the active sets, then every set. depth is the nesting level of this
// render; shortcodes found at MaxDepth are left as literal text.
func (r *Renderer) Render(ctx context.Context, scope Scope, set, file string, depth int) domain.RenderResult {
	ctx, span := r.tracer.Start(ctx, "render",
		trace.WithAttributes(
			attribute.String("base47.file", file),
			attribute.Int("base47.depth", depth),
		),
	)
	defer span.End()

	result := r.render(ctx, scope, set, file, depth)

	span.SetAttributes(
		attribute.String("base47.set", result.Set),
		attribute.String("base47.kind", result.Kind.String()),
		attribute.String("base47.strategy", string(result.Strategy)),
	)
	if result.Kind == domain.RenderNotFound {
		span.SetStatus(codes.Error, domain.ErrTemplateNotFound.Error())
	}
	return result
}

func (r *Renderer) render(ctx context.Context, scope Scope, set, file string, depth int) domain.RenderResult {
	notFound := domain.RenderResult{Kind: domain.RenderNotFound, Set: set, File: file, Strategy: domain.StrategyNone}

	// Resolve.
	slug, path, ok := r.resolve(ctx, scope.Session, set, file)
	if !ok {
		return notFound
	}
	notFound.Set = slug

	// Authorize.
	if !r.active.IsActive(ctx, scope.Session, slug) {
		return domain.RenderResult{
			Kind:     domain.RenderInactive,
			HTML:     domain.InactiveMarker(slug),
			Set:      slug,
			File:     file,
			Strategy: domain.StrategyNone,
		}
	}

	// Read.
	//nolint:gosec // Path comes from the discovered template list.
	raw, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrTemplateNotFound.Error()), "path", path))
		return notFound
	}
	themeSet, ok := scope.Session.TemplateSets(ctx, false).Get(slug)
	if !ok {
		return notFound
	}

	// Strip and rewrite.
	html := markup.StripShell(string(raw))
	html = markup.RewriteAssets(html, themeSet.URL, markup.RewriteOptions{
		AddVersion: r.opts.AddVersion,
		Version:    strconv.FormatInt(r.now().Unix(), 10),
		Remap:      r.remap(ctx, themeSet),
	})

	// Expand.
	html = r.expand(ctx, scope, html, depth)

	if r.opts.Minify && r.minifier != nil {
		if small, err := r.minifier.MinifyHTML(html); err != nil {
			r.logger.Warn("minify " + slug + "/" + file + ": " + err.Error())
		} else {
			html = small
		}
	}

	// Enqueue.
	strategy := domain.StrategyNone
	if scope.Assets != nil {
		strategy = r.loader.EnqueueForSet(ctx, scope.Session, slug, scope.Assets)
	}

	return domain.RenderResult{
		Kind:     domain.RenderOK,
		HTML:     html,
		Set:      slug,
		File:     file,
		Strategy: strategy,
	}
}

func (r *Renderer) resolve(ctx context.Context, sess Session, set, file string) (string, string, bool) {
	list := sess.TemplateList(ctx, false)
	if set != "" {
		path, ok := list.Path(set, file)
		return set, path, ok
	}

	candidates := []string{r.settings.DefaultSet(ctx)}
	candidates = append(candidates, r.active.ActiveSets(ctx, sess)...)
	candidates = append(candidates, sess.TemplateSets(ctx, false).Slugs()...)
	for _, slug := range candidates {
		if path, ok := list.Path(slug, file); ok {
			return slug, path, true
		}
	}
	return "", "", false
}

func (r *Renderer) remap(ctx context.Context, set domain.ThemeSet) map[string]string {
	if !r.manifests.UsesManifest(ctx, set.Slug) {
		return nil
	}
	m, ok := r.manifests.Load(set)
	if !ok {
		return nil
	}
	return m.Assets
}

func (r *Renderer) expand(ctx context.Context, scope Scope, html string, depth int) string {
	if scope.Shortcodes == nil || !scope.Shortcodes.HasShortcodes(html) {
		return html
	}
	if depth >= r.opts.MaxDepth {
		r.logger.Warn("shortcode nesting stopped at depth " + strconv.Itoa(depth))
		return html
	}
	return scope.Shortcodes.Expand(ctx, scope, html, depth+1)
}
