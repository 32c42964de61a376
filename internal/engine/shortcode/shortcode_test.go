package shortcode_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adapter "go.trai.ch/base47/internal/adapters/cache"
	"go.trai.ch/base47/internal/adapters/fs"
	"go.trai.ch/base47/internal/adapters/options"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports/mocks"
	"go.trai.ch/base47/internal/engine/activeset"
	"go.trai.ch/base47/internal/engine/assets"
	"go.trai.ch/base47/internal/engine/cache"
	"go.trai.ch/base47/internal/engine/discovery"
	"go.trai.ch/base47/internal/engine/manifest"
	"go.trai.ch/base47/internal/engine/render"
	"go.trai.ch/base47/internal/engine/settings"
	"go.trai.ch/base47/internal/engine/shortcode"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	registrar *shortcode.Registrar
	session   *discovery.Session
	active    *activeset.Registry
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "demo-templates", "index.html"),
		"<html><body><h1>Demo</h1>\n[base47-demo-hero]\n[mivon-contact]\n[base47-nope]</body></html>")
	writeFile(t, filepath.Join(root, "demo-templates", "hero.html"), `<section class="hero">Hero</section>`)
	writeFile(t, filepath.Join(root, "demo-templates", "contact.html"), "<form>[base47-demo-hero]</form>")
	writeFile(t, filepath.Join(root, "demo-templates", "loop.html"), "<div>[base47-demo-loop]</div>")
	writeFile(t, filepath.Join(root, "demo-templates", "About Us.html"), "<p>About</p>")
	writeFile(t, filepath.Join(root, "other-templates", "index.html"), "<p>Other</p>")
	writeFile(t, filepath.Join(root, "other-templates", "pricing.html"), "<p>Pricing</p>")

	return buildFixture(t, root, logger)
}

func buildFixture(t *testing.T, root string, logger *mocks.MockLogger) *fixture {
	t.Helper()
	layer := cache.NewLayer(adapter.NewMemoryStore(), logger, true, time.Hour)
	d := discovery.New(root, "/themes", fs.NewSigner(), layer, logger)

	s := settings.New(options.NewFileStore(filepath.Join(t.TempDir(), "options.json")), logger, "")
	active := activeset.New(s, logger)
	manifests := manifest.New(s, logger)
	loader := assets.New(s, active, manifests, logger)
	renderer := render.New(s, active, manifests, loader, nil, logger, render.Options{MaxDepth: domain.DefaultMaxDepth})

	return &fixture{
		registrar: shortcode.NewRegistrar(renderer, active, logger),
		session:   d.NewSession(),
		active:    active,
	}
}

func TestBuild_ActiveOnly(t *testing.T) {
	f := newFixture(t)
	table := f.registrar.Build(context.Background(), f.session, false)

	assert.Equal(t, []string{
		"base47-about-us",
		"base47-contact",
		"base47-demo-about-us",
		"base47-demo-contact",
		"base47-demo-hero",
		"base47-demo-index",
		"base47-demo-loop",
		"base47-hero",
		"base47-index",
		"base47-loop",
		"mivon-about-us",
		"mivon-contact",
		"mivon-hero",
		"mivon-index",
		"mivon-loop",
	}, table.Names())

	e, ok := table.Lookup("base47-demo-about-us")
	require.True(t, ok)
	assert.Equal(t, shortcode.Entry{Name: "base47-demo-about-us", Set: "demo-templates", File: "About Us.html"}, e)

	alias, ok := table.Lookup("mivon-hero")
	require.True(t, ok)
	assert.True(t, alias.Alias)

	_, ok = table.Lookup("base47-other-index")
	assert.False(t, ok)
}

func TestBuild_IncludeInactive(t *testing.T) {
	f := newFixture(t)
	table := f.registrar.Build(context.Background(), f.session, true)

	e, ok := table.Lookup("base47-other-pricing")
	require.True(t, ok)
	assert.Equal(t, "other-templates", e.Set)

	// The first set in registry order owns a shared alias.
	alias, ok := table.Lookup("base47-index")
	require.True(t, ok)
	assert.Equal(t, "demo-templates", alias.Set)

	assert.Equal(t, len(table.Names()), table.Len())
	assert.Len(t, table.Entries(), table.Len())
}

func TestBuild_CanonicalCollisionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "base47-a-about")
		assert.Contains(t, msg, "a-templates/about.html")
		assert.Contains(t, msg, "already registered for a-templates/about.htm")
	}).Times(1)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a-templates", "about.htm"), "<p>htm</p>")
	writeFile(t, filepath.Join(root, "a-templates", "about.html"), "<p>html</p>")

	f := buildFixture(t, root, logger)
	table := f.registrar.Build(context.Background(), f.session, false)

	e, ok := table.Lookup("base47-a-about")
	require.True(t, ok)
	assert.Equal(t, "about.htm", e.File)
}

func TestInvoke_NestedExpansion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	table := f.registrar.Build(ctx, f.session, false)

	res := table.Invoke(ctx, render.Scope{Session: f.session}, "base47-demo-index", 0)
	require.Equal(t, domain.RenderOK, res.Kind)
	assert.Equal(t,
		"<h1>Demo</h1>\n<section class=\"hero\">Hero</section>\n<form><section class=\"hero\">Hero</section></form>\n[base47-nope]",
		res.HTML)
}

func TestInvoke_LegacyAliasMatchesCanonical(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	table := f.registrar.Build(ctx, f.session, false)
	scope := render.Scope{Session: f.session}

	canonical := table.Invoke(ctx, scope, "base47-demo-hero", 0)
	for _, name := range []string{"base47-hero", "mivon-hero"} {
		assert.Equal(t, canonical, table.Invoke(ctx, scope, name, 0), name)
	}
}

func TestInvoke_DepthLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	table := f.registrar.Build(ctx, f.session, false)

	res := table.Invoke(ctx, render.Scope{Session: f.session}, "base47-demo-loop", 0)
	require.Equal(t, domain.RenderOK, res.Kind)

	depth := domain.DefaultMaxDepth + 1
	want := strings.Repeat("<div>", depth) + "[base47-demo-loop]" + strings.Repeat("</div>", depth)
	assert.Equal(t, want, res.HTML)
}

func TestInvoke_Unknown(t *testing.T) {
	f := newFixture(t)
	table := f.registrar.Build(context.Background(), f.session, false)

	res := table.Invoke(context.Background(), render.Scope{Session: f.session}, "base47-missing", 0)
	assert.Equal(t, domain.RenderNotFound, res.Kind)
}

func TestExpand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	table := f.registrar.Build(ctx, f.session, false)
	scope := render.Scope{Session: f.session, Shortcodes: table}

	assert.True(t, table.HasShortcodes(`<p>[base47-hero]</p>`))
	assert.False(t, table.HasShortcodes(`<p>[base47-nope] [gallery id="1"]</p>`))

	got := table.Expand(ctx, scope, `<main>[base47-hero class="wide"] [gallery]</main>`, 1)
	assert.Equal(t, `<main><section class="hero">Hero</section> [gallery]</main>`, got)

	assert.Equal(t, "plain", table.Expand(ctx, scope, "plain", 1))
}

func TestFileSlug(t *testing.T) {
	assert.Equal(t, "about-us", shortcode.FileSlug("About Us.html"))
	assert.Equal(t, "home_page", shortcode.FileSlug("home_page.htm"))
	assert.Equal(t, fmt.Sprintf("tpl-%08x", uint32(xxhash.Sum64String("关于.html"))), shortcode.FileSlug("关于.html"))
}
