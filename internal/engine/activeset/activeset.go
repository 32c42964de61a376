// Package activeset tracks which theme sets may render.
package activeset

import (
	"context"
	"slices"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/base47/internal/engine/settings"
	"go.trai.ch/zerr"
)

// SetSource yields the discovered sets.
type SetSource interface {
	TemplateSets(ctx context.Context, force bool) *domain.SetRegistry
}

// Registry resolves the active list against what is on disk.
type Registry struct {
	settings *settings.Settings
	logger   ports.Logger
}

// New creates a Registry.
func New(s *settings.Settings, logger ports.Logger) *Registry {
	return &Registry{settings: s, logger: logger}
}

// ActiveSets returns the stored active slugs that still exist, in stored order.
// When none remain and at least one set exists, the first discovered set is
// activated, persisted and returned.
func (r *Registry) ActiveSets(ctx context.Context, src SetSource) []string {
	reg := src.TemplateSets(ctx, false)

	active := slices.DeleteFunc(r.settings.List(ctx, domain.OptionActiveSets), func(slug string) bool {
		return !reg.Has(slug)
	})
	if len(active) > 0 || reg.Len() == 0 {
		return active
	}

	first := reg.Slugs()[0]
	if err := r.settings.SetList(ctx, domain.OptionActiveSets, []string{first}); err != nil {
		r.logger.Error(err)
	}
	r.logger.Info("activated " + first + " because no active set remained")
	return []string{first}
}

// IsActive reports whether slug is in the self-healed active list.
func (r *Registry) IsActive(ctx context.Context, src SetSource, slug string) bool {
	return slices.Contains(r.ActiveSets(ctx, src), slug)
}

// Activate adds slugs to the active list. Every slug must be discovered.
func (r *Registry) Activate(ctx context.Context, src SetSource, slugs ...string) error {
	if err := requireKnown(ctx, src, slugs); err != nil {
		return err
	}
	return r.settings.SetList(ctx, domain.OptionActiveSets, append(r.stored(ctx, src), slugs...))
}

// Deactivate removes slugs from the active list. Removing the last set leaves the
// list empty; the next read activates the first discovered set again.
func (r *Registry) Deactivate(ctx context.Context, src SetSource, slugs ...string) error {
	if err := requireKnown(ctx, src, slugs); err != nil {
		return err
	}
	remaining := slices.DeleteFunc(r.stored(ctx, src), func(slug string) bool {
		return slices.Contains(slugs, slug)
	})
	return r.settings.SetList(ctx, domain.OptionActiveSets, remaining)
}

// SetActive replaces the active list.
func (r *Registry) SetActive(ctx context.Context, src SetSource, slugs []string) error {
	if err := requireKnown(ctx, src, slugs); err != nil {
		return err
	}
	return r.settings.SetList(ctx, domain.OptionActiveSets, slugs)
}

// stored returns the persisted list filtered to discovered sets, without self-heal.
func (r *Registry) stored(ctx context.Context, src SetSource) []string {
	reg := src.TemplateSets(ctx, false)
	return slices.DeleteFunc(r.settings.List(ctx, domain.OptionActiveSets), func(slug string) bool {
		return !reg.Has(slug)
	})
}

func requireKnown(ctx context.Context, src SetSource, slugs []string) error {
	reg := src.TemplateSets(ctx, false)
	for _, slug := range slugs {
		if !reg.Has(slug) {
			return zerr.With(domain.ErrSetNotFound, "set", slug)
		}
	}
	return nil
}
