// Package discovery finds theme sets and their templates under the themes root.
package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/base47/internal/engine/cache"
	"go.trai.ch/zerr"
)

// Discovery scans the themes root for set folders.
type Discovery struct {
	root    string
	baseURL string
	signer  ports.Signer
	cache   *cache.Layer
	logger  ports.Logger
}

// New creates a Discovery rooted at root. Set URLs are built from baseURL.
func New(root, baseURL string, signer ports.Signer, layer *cache.Layer, logger ports.Logger) *Discovery {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Discovery{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		signer:  signer,
		cache:   layer,
		logger:  logger,
	}
}

// Root returns the absolute themes root.
func (d *Discovery) Root() string {
	return d.root
}

// SetURL returns the public base URL of a set folder, with a trailing slash.
func (d *Discovery) SetURL(folder string) string {
	return d.baseURL + "/" + folder + "/"
}

// NewSession starts a request-scoped view that memoizes scan results.
func (d *Discovery) NewSession() *Session {
	return &Session{d: d}
}

// ClearCache drops every cached scan.
func (d *Discovery) ClearCache(ctx context.Context) error {
	return d.cache.ClearAll(ctx)
}

func (d *Discovery) loadSets(ctx context.Context, force bool) *domain.SetRegistry {
	signature := d.signer.Signature(d.root, domain.SetGlob)

	var cached []domain.ThemeSet
	if !force && d.cache.Lookup(ctx, domain.CacheKeySets, signature, &cached) {
		return domain.NewSetRegistry(cached)
	}

	reg := domain.NewSetRegistry(d.scanSets())
	d.cache.Store(ctx, domain.CacheKeySets, signature, reg.Sets())
	return reg
}

func (d *Discovery) loadTemplates(ctx context.Context, force bool) domain.TemplateList {
	signature := d.signer.Signature(d.root, domain.TemplateGlob)

	var cached domain.TemplateList
	if !force && d.cache.Lookup(ctx, domain.CacheKeyTemplates, signature, &cached) && cached != nil {
		return cached
	}

	list := d.scanTemplates()
	d.cache.Store(ctx, domain.CacheKeyTemplates, signature, list)
	return list
}

func (d *Discovery) setDirs() []string {
	matches, err := filepath.Glob(filepath.Join(d.root, domain.SetGlob))
	if err != nil {
		d.logger.Warn("scan " + d.root + ": " + err.Error())
		return nil
	}

	dirs := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			d.logger.Warn("scan " + match + ": " + err.Error())
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, match)
		}
	}
	return dirs
}

func (d *Discovery) scanSets() []domain.ThemeSet {
	dirs := d.setDirs()
	sets := make([]domain.ThemeSet, 0, len(dirs))
	for _, dir := range dirs {
		sets = append(sets, d.describe(dir))
	}
	return sets
}

func (d *Discovery) describe(dir string) domain.ThemeSet {
	folder := filepath.Base(dir)
	set := domain.ThemeSet{
		Slug:  folder,
		Path:  dir,
		URL:   d.SetURL(folder),
		Label: folder,
	}

	meta, err := readThemeMeta(filepath.Join(dir, domain.ThemeMetaFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.logger.Error(err)
		}
		return set
	}

	if meta.Label != "" {
		set.Label = meta.Label
	}
	set.Description = meta.Description
	set.Version = meta.Version
	set.Accent = meta.Accent
	set.Thumbnail = resolveThumbnail(set.URL, meta.Thumbnail)
	return set
}

func (d *Discovery) scanTemplates() domain.TemplateList {
	list := make(domain.TemplateList)
	for _, dir := range d.setDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			d.logger.Warn("scan " + dir + ": " + err.Error())
			continue
		}

		files := make(map[string]string)
		for _, entry := range entries {
			if entry.IsDir() || !domain.IsTemplateFile(entry.Name()) {
				continue
			}
			files[entry.Name()] = filepath.Join(dir, entry.Name())
		}
		list[filepath.Base(dir)] = files
	}
	return list
}

func readThemeMeta(path string) (domain.ThemeMeta, error) {
	var meta domain.ThemeMeta
	//nolint:gosec // Path is built from a discovered set folder.
	data, err := os.ReadFile(path)
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, zerr.With(zerr.Wrap(err, domain.ErrMalformedThemeMeta.Error()), "path", path)
	}
	return meta, nil
}

func resolveThumbnail(setURL, thumb string) string {
	if thumb == "" {
		return ""
	}
	lower := strings.ToLower(thumb)
	for _, prefix := range []string{"http://", "https://", "//", "/", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return thumb
		}
	}
	return setURL + strings.TrimPrefix(thumb, "./")
}
