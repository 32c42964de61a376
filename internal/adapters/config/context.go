package config

import "context"

// Overrides carries command line settings that take precedence over the config file.
type Overrides struct {
	Path       string
	ThemesRoot string
	BaseURL    string
	JSON       bool
	Trace      bool
}

type overridesKey struct{}

// WithOverrides returns a context carrying the given overrides.
func WithOverrides(ctx context.Context, o Overrides) context.Context {
	return context.WithValue(ctx, overridesKey{}, o)
}

// OverridesFrom returns the overrides stored in ctx, or the zero value.
func OverridesFrom(ctx context.Context) Overrides {
	o, _ := ctx.Value(overridesKey{}).(Overrides)
	return o
}
