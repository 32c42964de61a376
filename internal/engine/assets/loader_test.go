package assets_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/base47/internal/adapters/options"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports/mocks"
	"go.trai.ch/base47/internal/engine/activeset"
	"go.trai.ch/base47/internal/engine/assets"
	"go.trai.ch/base47/internal/engine/manifest"
	"go.trai.ch/base47/internal/engine/settings"
	"go.uber.org/mock/gomock"
)

type staticSource struct {
	reg *domain.SetRegistry
}

func (s staticSource) TemplateSets(context.Context, bool) *domain.SetRegistry {
	return s.reg
}

type fixture struct {
	loader   *assets.Loader
	settings *settings.Settings
	active   *activeset.Registry
	src      staticSource
	set      domain.ThemeSet
	mtime    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	root := t.TempDir()
	dir := filepath.Join(root, "demo-templates")
	mtime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, rel := range []string{"assets/css/b.css", "assets/css/a.css", "assets/js/app.js", "assets/js/notes.txt"} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	set := domain.ThemeSet{Slug: "demo-templates", Path: dir, URL: "http://x/themes/demo-templates/"}
	other := domain.ThemeSet{Slug: "other-templates", Path: filepath.Join(root, "other-templates"), URL: "http://x/themes/other-templates/"}

	store := options.NewFileStore(filepath.Join(t.TempDir(), "options.json"))
	s := settings.New(store, logger, "")
	active := activeset.New(s, logger)
	manifests := manifest.New(s, logger)

	return &fixture{
		loader:   assets.New(s, active, manifests, logger),
		settings: s,
		active:   active,
		src:      staticSource{reg: domain.NewSetRegistry([]domain.ThemeSet{set, other})},
		set:      set,
		mtime:    mtime,
	}
}

func (f *fixture) writeManifest(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.set.Path, domain.ManifestFile), []byte(content), 0o600))
}

func TestEnqueueForSet_Fallback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	got, strategy := f.loader.AssetsFor(ctx, f.src, "demo-templates")
	assert.Equal(t, domain.StrategyFallback, strategy)
	require.Len(t, got, 3)

	version := fmt.Sprint(f.mtime.Unix())
	assert.Equal(t, "http://x/themes/demo-templates/assets/css/a.css", got[0].URL)
	assert.Equal(t, "http://x/themes/demo-templates/assets/css/b.css", got[1].URL)
	assert.Equal(t, domain.AssetStyle, got[0].Kind)
	assert.Equal(t, version, got[0].Version)
	assert.Empty(t, got[0].Deps)

	abs := filepath.Join(f.set.Path, "assets", "css", "a.css")
	assert.Equal(t, fmt.Sprintf("base47-css-%016x", xxhash.Sum64String(abs)), got[0].Handle)

	assert.Equal(t, "http://x/themes/demo-templates/assets/js/app.js", got[2].URL)
	assert.Equal(t, domain.AssetScript, got[2].Kind)
	assert.Equal(t, []string{domain.BaselineScriptHandle}, got[2].Deps)
}

func TestEnqueueForSet_Manifest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.writeManifest(t, `{"css":["assets/css/b.css","assets/css/missing.css"],"js":["../../escape.js","/assets/js/app.js"]}`)
	require.NoError(t, f.loader.SetSmartMode(ctx, "demo-templates", false))

	// Manifest mode off: the manifest is ignored.
	_, strategy := f.loader.AssetsFor(ctx, f.src, "demo-templates")
	assert.Equal(t, domain.StrategyFallback, strategy)

	require.NoError(t, f.settings.Toggle(ctx, domain.OptionManifestSets, "demo-templates", true))
	got, strategy := f.loader.AssetsFor(ctx, f.src, "demo-templates")
	assert.Equal(t, domain.StrategyManifest, strategy)
	require.Len(t, got, 2)
	assert.Equal(t, "http://x/themes/demo-templates/assets/css/b.css", got[0].URL)
	assert.Equal(t, fmt.Sprintf("demo-templates-css-%016x", xxhash.Sum64String("assets/css/b.css")), got[0].Handle)
	assert.Equal(t, "http://x/themes/demo-templates/assets/js/app.js", got[1].URL)
	assert.Equal(t, []string{domain.BaselineScriptHandle}, got[1].Deps)
}

func TestEnqueueForSet_MalformedManifestFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.writeManifest(t, `[1,2,3]`)
	require.NoError(t, f.settings.Toggle(ctx, domain.OptionManifestSets, "demo-templates", true))

	got, strategy := f.loader.AssetsFor(ctx, f.src, "demo-templates")
	assert.Equal(t, domain.StrategyFallback, strategy)
	assert.Len(t, got, 3)
}

func TestEnqueueForSet_SmartWins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.writeManifest(t, `{"css":["assets/css/b.css"]}`)
	require.NoError(t, f.settings.Toggle(ctx, domain.OptionManifestSets, "demo-templates", true))
	require.NoError(t, f.loader.SetSmartMode(ctx, "demo-templates", true))
	assert.True(t, f.loader.UsesSmart(ctx, "demo-templates"))

	got, strategy := f.loader.AssetsFor(ctx, f.src, "demo-templates")
	assert.Equal(t, domain.StrategySmart, strategy)
	assert.Len(t, got, 3)
}

func TestEnqueueForSet_None(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockAssetRegistry(ctrl)

	assert.Equal(t, domain.StrategyNone, f.loader.EnqueueForSet(ctx, f.src, "unknown-templates", reg))

	require.NoError(t, f.active.SetActive(ctx, f.src, []string{"other-templates"}))
	assert.Equal(t, domain.StrategyNone, f.loader.EnqueueForSet(ctx, f.src, "demo-templates", reg))
}

func TestEnqueueForSet_DefaultSet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockAssetRegistry(ctrl)
	reg.EXPECT().Enqueue(gomock.Any()).Times(3)

	require.NoError(t, f.settings.SetDefaultSet(ctx, "demo-templates"))
	assert.Equal(t, domain.StrategyFallback, f.loader.EnqueueForSet(ctx, f.src, "", reg))
}
