// Package shortcode maps shortcode names to templates and expands them in HTML.
package shortcode

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/base47/internal/engine/activeset"
	"go.trai.ch/base47/internal/engine/render"
)

// TemplateRenderer renders one template of a set.
type TemplateRenderer interface {
	Render(ctx context.Context, scope render.Scope, set, file string, depth int) domain.RenderResult
}

// Entry binds a shortcode name to a template.
type Entry struct {
	Name  string `json:"name"`
	Set   string `json:"set"`
	File  string `json:"file"`
	Alias bool   `json:"alias"`
}

// Registrar builds shortcode tables from the discovered templates.
type Registrar struct {
	renderer TemplateRenderer
	active   *activeset.Registry
	logger   ports.Logger
}

// NewRegistrar creates a Registrar.
func NewRegistrar(renderer TemplateRenderer, active *activeset.Registry, logger ports.Logger) *Registrar {
	return &Registrar{renderer: renderer, active: active, logger: logger}
}

// Build registers base47-{set}-{file} for every template of every active set,
// or of every set when includeInactive is set. The legacy names base47-{file}
// and mivon-{file} are added afterwards for names still free, so canonical
// names always win and the first set in registry order owns an alias.
// A template whose canonical name is already taken is skipped with a warning.
func (r *Registrar) Build(ctx context.Context, sess render.Session, includeInactive bool) *Table {
	reg := sess.TemplateSets(ctx, false)
	list := sess.TemplateList(ctx, false)

	slugs := reg.Slugs()
	if !includeInactive {
		active := make(map[string]struct{})
		for _, slug := range r.active.ActiveSets(ctx, sess) {
			active[slug] = struct{}{}
		}
		filtered := slugs[:0]
		for _, slug := range slugs {
			if _, ok := active[slug]; ok {
				filtered = append(filtered, slug)
			}
		}
		slugs = filtered
	}

	t := newTable(r.renderer)
	for _, slug := range slugs {
		setPart := setSlug(slug)
		for _, file := range list.Files(slug) {
			name := fmt.Sprintf("%s-%s-%s", domain.ShortcodePrefix, setPart, fileSlug(file))
			if !t.add(Entry{Name: name, Set: slug, File: file}) {
				owner, _ := t.Lookup(name)
				r.logger.Warn(fmt.Sprintf("shortcode %s for %s/%s is already registered for %s/%s",
					name, slug, file, owner.Set, owner.File))
			}
		}
	}
	for _, slug := range slugs {
		for _, file := range list.Files(slug) {
			stem := fileSlug(file)
			for _, prefix := range []string{domain.ShortcodePrefix, domain.LegacyShortcodePrefix} {
				t.add(Entry{Name: prefix + "-" + stem, Set: slug, File: file, Alias: true})
			}
		}
	}
	return t
}

func setSlug(slug string) string {
	if s := domain.Slugify(domain.SetBaseName(slug)); s != "" {
		return s
	}
	return domain.HandlePrefix(slug)
}

// fileSlug derives the shortcode part of a template file name. Names
// without a usable character fall back to a hash of the file name.
func fileSlug(file string) string {
	if s := domain.Slugify(domain.TemplateStem(file)); s != "" {
		return s
	}
	return fmt.Sprintf("tpl-%08x", uint32(xxhash.Sum64String(file)))
}
