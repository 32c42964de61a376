// Package assets registers a theme set's stylesheets and scripts with a page.
package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/base47/internal/engine/activeset"
	"go.trai.ch/base47/internal/engine/manifest"
	"go.trai.ch/base47/internal/engine/settings"
)

// Loader picks one strategy per set and enqueues the resulting assets.
type Loader struct {
	settings  *settings.Settings
	active    *activeset.Registry
	manifests *manifest.Engine
	logger    ports.Logger
}

// New creates a Loader.
func New(s *settings.Settings, active *activeset.Registry, manifests *manifest.Engine, logger ports.Logger) *Loader {
	return &Loader{
		settings:  s,
		active:    active,
		manifests: manifests,
		logger:    logger,
	}
}

// SetSmartMode opts slug in or out of smart loading.
func (l *Loader) SetSmartMode(ctx context.Context, slug string, on bool) error {
	return l.settings.Toggle(ctx, domain.OptionSmartSets, slug, on)
}

// UsesSmart reports whether slug is opted into smart loading.
func (l *Loader) UsesSmart(ctx context.Context, slug string) bool {
	return l.settings.InList(ctx, domain.OptionSmartSets, slug)
}

// EnqueueForSet registers the assets of slug with reg and reports the strategy used.
// An empty slug resolves to the default set. Unknown or inactive sets enqueue nothing.
// Strategies are tried in order: smart, manifest, fallback.
func (l *Loader) EnqueueForSet(
	ctx context.Context,
	src activeset.SetSource,
	slug string,
	reg ports.AssetRegistry,
) domain.AssetStrategy {
	if slug == "" {
		slug = l.settings.DefaultSet(ctx)
	}
	set, ok := src.TemplateSets(ctx, false).Get(slug)
	if !ok || !l.active.IsActive(ctx, src, slug) {
		return domain.StrategyNone
	}

	if l.UsesSmart(ctx, slug) {
		l.enqueueAll(set, reg)
		return domain.StrategySmart
	}

	if l.manifests.UsesManifest(ctx, slug) {
		if m, ok := l.manifests.Load(set); ok {
			l.enqueueManifest(m, reg)
			return domain.StrategyManifest
		}
	}

	l.enqueueAll(set, reg)
	return domain.StrategyFallback
}

// AssetsFor lists the assets EnqueueForSet would register, without a page.
func (l *Loader) AssetsFor(ctx context.Context, src activeset.SetSource, slug string) ([]domain.Asset, domain.AssetStrategy) {
	var list assetList
	strategy := l.EnqueueForSet(ctx, src, slug, &list)
	return list, strategy
}

func (l *Loader) enqueueAll(set domain.ThemeSet, reg ports.AssetRegistry) {
	for _, asset := range l.scan(set, domain.StylesGlob, domain.AssetStyle) {
		reg.Enqueue(asset)
	}
	for _, asset := range l.scan(set, domain.ScriptsGlob, domain.AssetScript) {
		reg.Enqueue(asset)
	}
}

func (l *Loader) scan(set domain.ThemeSet, pattern string, kind domain.AssetKind) []domain.Asset {
	matches, err := filepath.Glob(filepath.Join(set.Path, filepath.FromSlash(pattern)))
	if err != nil {
		l.logger.Warn("scan " + set.Path + ": " + err.Error())
		return nil
	}
	domain.SortNatural(matches)

	out := make([]domain.Asset, 0, len(matches))
	for _, abs := range matches {
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			continue
		}
		rel, err := filepath.Rel(set.Path, abs)
		if err != nil {
			continue
		}
		out = append(out, newAsset(
			fmt.Sprintf("%s-%s-%016x", domain.ShortcodePrefix, kind, xxhash.Sum64String(abs)),
			set.URL+filepath.ToSlash(rel),
			info,
			kind,
		))
	}
	return out
}

func (l *Loader) enqueueManifest(m *domain.Manifest, reg ports.AssetRegistry) {
	for _, rel := range m.Styles() {
		if asset, ok := l.manifestAsset(m, rel, domain.AssetStyle); ok {
			reg.Enqueue(asset)
		}
	}
	for _, rel := range m.Scripts() {
		if asset, ok := l.manifestAsset(m, rel, domain.AssetScript); ok {
			reg.Enqueue(asset)
		}
	}
}

// manifestAsset resolves one manifest entry. Entries that are missing on disk
// or point outside the set folder are skipped.
func (l *Loader) manifestAsset(m *domain.Manifest, rel string, kind domain.AssetKind) (domain.Asset, bool) {
	rel = strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+rel)), "/")
	if rel == "" {
		return domain.Asset{}, false
	}

	abs := filepath.Join(m.BasePath, filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		l.logger.Warn(fmt.Sprintf("manifest of %s lists missing file %s", m.SetSlug, rel))
		return domain.Asset{}, false
	}

	return newAsset(
		fmt.Sprintf("%s-%s-%016x", m.HandlePrefix, kind, xxhash.Sum64String(rel)),
		m.BaseURL+rel,
		info,
		kind,
	), true
}

func newAsset(handle, url string, info os.FileInfo, kind domain.AssetKind) domain.Asset {
	asset := domain.Asset{
		Handle:  handle,
		URL:     url,
		Version: strconv.FormatInt(info.ModTime().Unix(), 10),
		Kind:    kind,
	}
	if kind == domain.AssetScript {
		asset.Deps = []string{domain.BaselineScriptHandle}
	}
	return asset
}

type assetList []domain.Asset

func (a *assetList) Enqueue(asset domain.Asset) {
	for _, existing := range *a {
		if existing.Handle == asset.Handle {
			return
		}
	}
	*a = append(*a, asset)
}
