// Package manifest loads per-set manifest.json files.
package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/base47/internal/engine/activeset"
	"go.trai.ch/base47/internal/engine/settings"
	"go.trai.ch/zerr"
)

// Engine reads manifests and the per-set manifest mode.
type Engine struct {
	settings *settings.Settings
	logger   ports.Logger
}

// New creates an Engine.
func New(s *settings.Settings, logger ports.Logger) *Engine {
	return &Engine{settings: s, logger: logger}
}

// Load reads the manifest of set. It fails soft: a missing file reports false,
// an unreadable or malformed one is logged and reports false.
func (e *Engine) Load(set domain.ThemeSet) (*domain.Manifest, bool) {
	path := filepath.Join(set.Path, domain.ManifestFile)

	//nolint:gosec // Path is built from a discovered set folder.
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			e.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrMalformedManifest.Error()), "path", path))
		}
		return nil, false
	}

	m, err := decode(data)
	if err != nil {
		e.logger.Error(zerr.With(err, "path", path))
		return nil, false
	}

	m.SetSlug = set.Slug
	m.BaseURL = set.URL
	m.BasePath = set.Path
	m.HandlePrefix = domain.HandlePrefix(set.Slug)
	return m, true
}

func decode(data []byte) (*domain.Manifest, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, domain.ErrMalformedManifest
	}
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedManifest.Error())
	}
	return &m, nil
}

// All loads the manifest of every discovered set that has a valid one.
func (e *Engine) All(ctx context.Context, src activeset.SetSource) map[string]*domain.Manifest {
	out := make(map[string]*domain.Manifest)
	for _, set := range src.TemplateSets(ctx, false).Sets() {
		if m, ok := e.Load(set); ok {
			out[set.Slug] = m
		}
	}
	return out
}

// UsesManifest reports whether slug is opted into manifest mode.
func (e *Engine) UsesManifest(ctx context.Context, slug string) bool {
	return e.settings.InList(ctx, domain.OptionManifestSets, slug)
}

// SetManifestMode opts slug in or out of manifest mode.
func (e *Engine) SetManifestMode(ctx context.Context, slug string, on bool) error {
	return e.settings.Toggle(ctx, domain.OptionManifestSets, slug, on)
}
