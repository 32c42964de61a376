// Package settings reads and writes the persisted per-set switches.
package settings

import (
	"context"
	"slices"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
)

// Settings wraps the option store with the list and default-set semantics
// shared by the activation, manifest and asset engines.
// Read failures are logged and read as unset.
type Settings struct {
	options    ports.OptionStore
	logger     ports.Logger
	defaultSet string
}

// New creates Settings. fallbackDefault is used when no default set is stored.
func New(options ports.OptionStore, logger ports.Logger, fallbackDefault string) *Settings {
	return &Settings{
		options:    options,
		logger:     logger,
		defaultSet: fallbackDefault,
	}
}

// DefaultSet returns the stored default set, or the configured fallback.
func (s *Settings) DefaultSet(ctx context.Context) string {
	slug, err := s.options.GetString(ctx, domain.OptionDefaultSet)
	if err != nil {
		s.logger.Error(err)
	}
	if slug == "" {
		return s.defaultSet
	}
	return slug
}

// SetDefaultSet stores the default set. An empty slug clears it.
func (s *Settings) SetDefaultSet(ctx context.Context, slug string) error {
	return s.options.SetString(ctx, domain.OptionDefaultSet, slug)
}

// List returns the stored list under key with blanks and duplicates removed.
func (s *Settings) List(ctx context.Context, key string) []string {
	values, err := s.options.GetStrings(ctx, key)
	if err != nil {
		s.logger.Error(err)
		return nil
	}
	return compact(values)
}

// SetList stores values under key with blanks and duplicates removed.
func (s *Settings) SetList(ctx context.Context, key string, values []string) error {
	return s.options.SetStrings(ctx, key, compact(values))
}

// InList reports whether slug is stored under key.
func (s *Settings) InList(ctx context.Context, key, slug string) bool {
	return slices.Contains(s.List(ctx, key), slug)
}

// Toggle adds slug to or removes it from the list under key.
func (s *Settings) Toggle(ctx context.Context, key, slug string, on bool) error {
	current := s.List(ctx, key)
	has := slices.Contains(current, slug)
	switch {
	case on && !has:
		current = append(current, slug)
	case !on && has:
		current = slices.DeleteFunc(current, func(v string) bool { return v == slug })
	default:
		return nil
	}
	return s.SetList(ctx, key, current)
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
