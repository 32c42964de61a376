package domain

import (
	"path/filepath"
	"time"
)

const (
	// SetSuffix is the folder suffix that marks a directory as a theme set.
	SetSuffix = "-templates"

	// LegacySetSuffix is a misspelled suffix carried by early theme packages.
	LegacySetSuffix = "-templetes"

	// SetGlob matches theme set folders directly under the themes root.
	SetGlob = "*" + SetSuffix

	// TemplateGlob matches every entry one level inside the theme set folders.
	TemplateGlob = SetGlob + "/*"

	// ThemeMetaFile is the optional per-set metadata file.
	ThemeMetaFile = "theme.json"

	// ManifestFile is the optional per-set asset manifest.
	ManifestFile = "manifest.json"

	// StylesGlob matches stylesheets registered by directory scan.
	StylesGlob = "assets/css/*.css"

	// ScriptsGlob matches scripts registered by directory scan.
	ScriptsGlob = "assets/js/*.js"

	// AssetsPrefix is the relative prefix rewritten to the set url.
	AssetsPrefix = "assets/"

	// ShortcodePrefix prefixes every canonical shortcode name.
	ShortcodePrefix = "base47"

	// LegacyShortcodePrefix prefixes the oldest alias generation.
	LegacyShortcodePrefix = "mivon"

	// BaselineScriptHandle is the page library every theme script depends on.
	BaselineScriptHandle = "jquery"

	// VersionParam is the cache-busting query parameter name.
	VersionParam = "ver"

	// StateDirName is the name of the local state directory.
	StateDirName = ".base47"

	// CacheDirName is the name of the file cache directory.
	CacheDirName = "cache"

	// OptionsFileName is the name of the JSON option store file.
	OptionsFileName = "options.json"

	// OptionsDBName is the name of the SQLite option store file.
	OptionsDBName = "options.db"

	// LogFileName is the name of the append-only log file.
	LogFileName = "base47.log"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "base47.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Cache keys used by discovery.
const (
	CacheKeySets      = "base47_he_sets"
	CacheKeyTemplates = "base47_he_templates"
)

// CacheKeys lists every key the cache layer may hold.
func CacheKeys() []string {
	return []string{CacheKeySets, CacheKeyTemplates}
}

// Option keys persisted in the option store.
const (
	OptionActiveSets   = "base47_active_sets"
	OptionDefaultSet   = "base47_default_theme"
	OptionManifestSets = "base47_manifest_sets"
	OptionSmartSets    = "base47_smart_sets"
)

const (
	// DefaultCacheTTL is the lifetime of discovery cache entries.
	DefaultCacheTTL = 12 * time.Hour

	// DefaultMaxDepth caps nested shortcode expansion.
	DefaultMaxDepth = 5

	// DefaultLogMaxLines is the number of lines kept in the log file.
	DefaultLogMaxLines = 2000

	// DefaultServeAddr is the preview server listen address.
	DefaultServeAddr = "127.0.0.1:4747"
)

// DefaultStatePath returns the default root directory for base47 state.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultCachePath returns the default path for the file cache.
// It joins .base47 and cache.
func DefaultCachePath() string {
	return filepath.Join(StateDirName, CacheDirName)
}

// DefaultOptionsPath returns the default path for the JSON option store.
func DefaultOptionsPath() string {
	return filepath.Join(StateDirName, OptionsFileName)
}

// DefaultOptionsDBPath returns the default path for the SQLite option store.
func DefaultOptionsDBPath() string {
	return filepath.Join(StateDirName, OptionsDBName)
}

// DefaultLogPath returns the default path for the log file.
func DefaultLogPath() string {
	return filepath.Join(StateDirName, LogFileName)
}
