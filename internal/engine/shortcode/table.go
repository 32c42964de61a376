package shortcode

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/engine/render"
)

var shortcodeRe = regexp.MustCompile(`\[((?:` + domain.ShortcodePrefix + `|` + domain.LegacyShortcodePrefix + `)-[a-z0-9_-]+)(\s[^\]]*)?\]`)

// Table is the set of shortcodes registered for one request.
type Table struct {
	renderer TemplateRenderer
	entries  map[string]Entry
	names    []string
}

func newTable(renderer TemplateRenderer) *Table {
	return &Table{renderer: renderer, entries: make(map[string]Entry)}
}

// add registers e unless its name is taken.
// add registers e unless its name is taken and reports whether it did.
func (t *Table) add(e Entry) bool {
	if _, taken := t.entries[e.Name]; taken {
		return false
	}
	t.entries[e.Name] = e
	t.names = append(t.names, e.Name)
	return true
}

// Lookup returns the entry registered under name.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Names returns every registered name in sorted order.
func (t *Table) Names() []string {
	names := slices.Clone(t.names)
	slices.Sort(names)
	return names
}

// Entries returns every entry sorted by name.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.names))
	for _, name := range t.Names() {
		out = append(out, t.entries[name])
	}
	return out
}

// Len returns the number of registered names.
func (t *Table) Len() int {
	return len(t.entries)
}

// Invoke renders the template bound to name. Unknown names report RenderNotFound.
func (t *Table) Invoke(ctx context.Context, scope render.Scope, name string, depth int) domain.RenderResult {
	e, ok := t.entries[name]
	if !ok {
		return domain.RenderResult{Kind: domain.RenderNotFound, File: name, Strategy: domain.StrategyNone}
	}
	if scope.Shortcodes == nil {
		scope.Shortcodes = t
	}
	return t.renderer.Render(ctx, scope, e.Set, e.File, depth)
}

// HasShortcodes reports whether html contains a registered shortcode.
func (t *Table) HasShortcodes(html string) bool {
	for _, m := range shortcodeRe.FindAllStringSubmatch(html, -1) {
		if _, ok := t.entries[m[1]]; ok {
			return true
		}
	}
	return false
}

// Expand replaces every registered shortcode in html with its rendered fragment.
// Unregistered names are left as written. Templates that are not found render
// as an empty string.
func (t *Table) Expand(ctx context.Context, scope render.Scope, html string, depth int) string {
	if !strings.Contains(html, "[") {
		return html
	}
	return shortcodeRe.ReplaceAllStringFunc(html, func(match string) string {
		name := shortcodeRe.FindStringSubmatch(match)[1]
		if _, ok := t.entries[name]; !ok {
			return match
		}
		return t.Invoke(ctx, scope, name, depth).HTML
	})
}
