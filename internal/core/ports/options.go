package ports

import "context"

// OptionStore persists named settings shared across requests.
//
//go:generate mockgen -source=options.go -destination=mocks/mock_options.go -package=mocks
type OptionStore interface {
	// GetString returns the value of key, or an empty string when unset.
	GetString(ctx context.Context, key string) (string, error)

	// SetString stores a string value.
	SetString(ctx context.Context, key, value string) error

	// GetStrings returns the list stored under key, or nil when unset.
	GetStrings(ctx context.Context, key string) ([]string, error)

	// SetStrings stores a list value.
	SetStrings(ctx context.Context, key string, values []string) error
}
