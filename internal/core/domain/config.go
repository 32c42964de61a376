package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendFile   = "file"
	CacheBackendRedis  = "redis"
)

// Option store backends.
const (
	OptionsBackendFile   = "file"
	OptionsBackendSQLite = "sqlite"
)

// Config is the runtime configuration read from base47.yaml.
type Config struct {
	ThemesRoot string        `yaml:"themes_root"`
	BaseURL    string        `yaml:"base_url"`
	DefaultSet string        `yaml:"default_set"`
	Cache      CacheConfig   `yaml:"cache"`
	Options    OptionsConfig `yaml:"options"`
	Log        LogConfig     `yaml:"log"`
	Render     RenderConfig  `yaml:"render"`
	Serve      ServeConfig   `yaml:"serve"`
}

// CacheConfig configures the discovery cache.
type CacheConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Backend     string        `yaml:"backend"`
	TTL         time.Duration `yaml:"ttl"`
	Dir         string        `yaml:"dir"`
	RedisAddr   string        `yaml:"redis_addr"`
	RedisPrefix string        `yaml:"redis_prefix"`
}

// OptionsConfig configures the persisted option store.
type OptionsConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File     string `yaml:"file"`
	MaxLines int    `yaml:"max_lines"`
	JSON     bool   `yaml:"json"`
	// Trace logs one line per finished render span.
	Trace bool `yaml:"trace"`
}

// RenderConfig configures template rendering.
type RenderConfig struct {
	AddVersion bool `yaml:"add_version"`
	MaxDepth   int  `yaml:"max_depth"`
	Minify     bool `yaml:"minify"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		ThemesRoot: "themes",
		BaseURL:    "/themes",
		Cache: CacheConfig{
			Enabled:     true,
			Backend:     CacheBackendMemory,
			TTL:         DefaultCacheTTL,
			Dir:         DefaultCachePath(),
			RedisPrefix: "base47:",
		},
		Options: OptionsConfig{
			Backend: OptionsBackendFile,
			Path:    DefaultOptionsPath(),
		},
		Log: LogConfig{
			File:     DefaultLogPath(),
			MaxLines: DefaultLogMaxLines,
		},
		Render: RenderConfig{
			AddVersion: true,
			MaxDepth:   DefaultMaxDepth,
		},
		Serve: ServeConfig{
			Addr: DefaultServeAddr,
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.ThemesRoot == "" {
		return ErrMissingThemesRoot
	}
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendFile, CacheBackendRedis:
	default:
		return zerr.With(ErrInvalidCacheBackend, "backend", c.Cache.Backend)
	}
	switch c.Options.Backend {
	case OptionsBackendFile, OptionsBackendSQLite:
	default:
		return zerr.With(ErrInvalidOptionsBackend, "backend", c.Options.Backend)
	}
	if c.Render.MaxDepth <= 0 {
		return zerr.With(ErrInvalidMaxDepth, "max_depth", c.Render.MaxDepth)
	}
	return nil
}
