package domain

import (
	"slices"
	"strings"
)

// ThemeSet is a discovered folder of HTML templates sharing one asset tree.
type ThemeSet struct {
	Slug        string `json:"slug"`
	Path        string `json:"path"`
	URL         string `json:"url"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Accent      string `json:"accent"`
	Thumbnail   string `json:"thumbnail"`
}

// ThemeMeta is the decoded form of a theme.json file.
type ThemeMeta struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Accent      string `json:"accent"`
	Thumbnail   string `json:"thumbnail"`
}

// SetRegistry is an ordered, slug-indexed collection of theme sets.
type SetRegistry struct {
	sets  []ThemeSet
	index map[string]int
}

// NewSetRegistry builds a registry sorted by slug in natural case-insensitive order.
// Later duplicates of a slug are dropped.
func NewSetRegistry(sets []ThemeSet) *SetRegistry {
	sorted := slices.Clone(sets)
	slices.SortStableFunc(sorted, func(a, b ThemeSet) int {
		if c := NaturalCompare(a.Slug, b.Slug); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})

	r := &SetRegistry{
		sets:  make([]ThemeSet, 0, len(sorted)),
		index: make(map[string]int, len(sorted)),
	}
	for _, s := range sorted {
		if _, dup := r.index[s.Slug]; dup {
			continue
		}
		r.index[s.Slug] = len(r.sets)
		r.sets = append(r.sets, s)
	}
	return r
}

// Get returns the set with the given slug.
func (r *SetRegistry) Get(slug string) (ThemeSet, bool) {
	if r == nil {
		return ThemeSet{}, false
	}
	i, ok := r.index[slug]
	if !ok {
		return ThemeSet{}, false
	}
	return r.sets[i], true
}

// Has reports whether the slug is registered.
func (r *SetRegistry) Has(slug string) bool {
	_, ok := r.Get(slug)
	return ok
}

// Slugs returns every slug in registry order.
func (r *SetRegistry) Slugs() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.sets))
	for i, s := range r.sets {
		out[i] = s.Slug
	}
	return out
}

// Sets returns a copy of the sets in registry order.
func (r *SetRegistry) Sets() []ThemeSet {
	if r == nil {
		return nil
	}
	return slices.Clone(r.sets)
}

// Len returns the number of registered sets.
func (r *SetRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.sets)
}

// TemplateList maps a set slug to its template files and their absolute paths.
type TemplateList map[string]map[string]string

// Files returns the template file names of a set in natural order.
func (l TemplateList) Files(slug string) []string {
	files := make([]string, 0, len(l[slug]))
	for name := range l[slug] {
		files = append(files, name)
	}
	SortNatural(files)
	return files
}

// Path returns the absolute path of a template inside a set.
func (l TemplateList) Path(slug, file string) (string, bool) {
	p, ok := l[slug][file]
	return p, ok
}

// Contains reports whether the set holds the template file.
func (l TemplateList) Contains(slug, file string) bool {
	_, ok := l.Path(slug, file)
	return ok
}
