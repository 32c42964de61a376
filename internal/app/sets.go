package app

import (
	"context"
	"slices"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/engine/shortcode"
	"go.trai.ch/zerr"
)

// Set modes toggled with SetMode.
const (
	ModeManifest = "manifest"
	ModeSmart    = "smart"
)

// SetInfo describes one discovered set and its switches.
type SetInfo struct {
	domain.ThemeSet
	Active    bool `json:"active"`
	Default   bool `json:"default"`
	Manifest  bool `json:"manifest"`
	Smart     bool `json:"smart"`
	Templates int  `json:"templates"`
}

// TemplateInfo describes one template file.
type TemplateInfo struct {
	Set  string `json:"set"`
	File string `json:"file"`
	Path string `json:"path"`
}

// ListSets reports every discovered set in registry order.
func (a *App) ListSets(ctx context.Context) []SetInfo {
	sess := a.discovery.NewSession()
	reg := sess.TemplateSets(ctx, false)
	list := sess.TemplateList(ctx, false)
	active := a.active.ActiveSets(ctx, sess)
	def := a.settings.DefaultSet(ctx)

	out := make([]SetInfo, 0, reg.Len())
	for _, set := range reg.Sets() {
		out = append(out, SetInfo{
			ThemeSet:  set,
			Active:    slices.Contains(active, set.Slug),
			Default:   set.Slug == def,
			Manifest:  a.manifests.UsesManifest(ctx, set.Slug),
			Smart:     a.loader.UsesSmart(ctx, set.Slug),
			Templates: len(list.Files(set.Slug)),
		})
	}
	return out
}

// ListTemplates reports the templates of set, or of every set when set is empty.
func (a *App) ListTemplates(ctx context.Context, set string) ([]TemplateInfo, error) {
	sess := a.discovery.NewSession()
	reg := sess.TemplateSets(ctx, false)
	list := sess.TemplateList(ctx, false)

	slugs := reg.Slugs()
	if set != "" {
		if !reg.Has(set) {
			return nil, zerr.With(domain.ErrSetNotFound, "set", set)
		}
		slugs = []string{set}
	}

	var out []TemplateInfo
	for _, slug := range slugs {
		for _, file := range list.Files(slug) {
			path, _ := list.Path(slug, file)
			out = append(out, TemplateInfo{Set: slug, File: file, Path: path})
		}
	}
	return out, nil
}

// ListShortcodes reports the registered shortcode names.
func (a *App) ListShortcodes(ctx context.Context, includeInactive bool) []shortcode.Entry {
	return a.NewRequest(ctx, includeInactive).Shortcodes.Entries()
}

// Refresh clears the discovery cache and rescans the themes root.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.discovery.NewSession().Refresh(ctx); err != nil {
		return err
	}
	a.logger.Info("theme caches refreshed")
	return nil
}

// Activate enables the given sets.
func (a *App) Activate(ctx context.Context, slugs ...string) error {
	if err := a.active.Activate(ctx, a.discovery.NewSession(), slugs...); err != nil {
		return err
	}
	for _, slug := range slugs {
		a.logger.Info("activated " + slug)
	}
	return nil
}

// Deactivate disables the given sets.
func (a *App) Deactivate(ctx context.Context, slugs ...string) error {
	if err := a.active.Deactivate(ctx, a.discovery.NewSession(), slugs...); err != nil {
		return err
	}
	for _, slug := range slugs {
		a.logger.Info("deactivated " + slug)
	}
	return nil
}

// SetDefault makes slug the default set used by lookups without an explicit set.
func (a *App) SetDefault(ctx context.Context, slug string) error {
	if !a.discovery.NewSession().TemplateSets(ctx, false).Has(slug) {
		return zerr.With(domain.ErrSetNotFound, "set", slug)
	}
	if err := a.settings.SetDefaultSet(ctx, slug); err != nil {
		return err
	}
	a.logger.Info("default set is now " + slug)
	return nil
}

// SetMode switches the manifest or smart loading mode of slug.
func (a *App) SetMode(ctx context.Context, mode, slug string, on bool) error {
	if !a.discovery.NewSession().TemplateSets(ctx, false).Has(slug) {
		return zerr.With(domain.ErrSetNotFound, "set", slug)
	}

	var err error
	switch mode {
	case ModeManifest:
		err = a.manifests.SetManifestMode(ctx, slug, on)
	case ModeSmart:
		err = a.loader.SetSmartMode(ctx, slug, on)
	default:
		return zerr.With(domain.ErrInvalidMode, "mode", mode)
	}
	if err != nil {
		return err
	}

	state := "off"
	if on {
		state = "on"
	}
	a.logger.Info(mode + " mode " + state + " for " + slug)
	return nil
}

// ClearLogs empties the log file.
func (a *App) ClearLogs(_ context.Context) error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Clear()
}
