package discovery

import (
	"context"

	"go.trai.ch/base47/internal/core/domain"
)

// Session memoizes scan results for the lifetime of one request.
// It is not safe for concurrent use.
type Session struct {
	d         *Discovery
	sets      *domain.SetRegistry
	templates domain.TemplateList
}

// TemplateSets returns the discovered sets. With force set the cache and the memo
// are bypassed and the result replaces both.
func (s *Session) TemplateSets(ctx context.Context, force bool) *domain.SetRegistry {
	if s.sets != nil && !force {
		return s.sets
	}
	s.sets = s.d.loadSets(ctx, force)
	return s.sets
}

// TemplateList returns the template files of every discovered set.
func (s *Session) TemplateList(ctx context.Context, force bool) domain.TemplateList {
	if s.templates != nil && !force {
		return s.templates
	}
	s.templates = s.d.loadTemplates(ctx, force)
	return s.templates
}

// Refresh clears the cache and the memo, then rescans both listings.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.d.ClearCache(ctx); err != nil {
		return err
	}
	s.sets = nil
	s.templates = nil
	s.TemplateSets(ctx, true)
	s.TemplateList(ctx, true)
	return nil
}

// Root returns the absolute themes root.
func (s *Session) Root() string {
	return s.d.root
}
