package domain

import "go.trai.ch/zerr"

var (
	// ErrSetNotFound is returned when a theme set slug does not match any discovered set.
	ErrSetNotFound = zerr.New("theme set not found")

	// ErrTemplateNotFound is returned when a template cannot be located in any set.
	ErrTemplateNotFound = zerr.New("template not found")

	// ErrSetInactive is returned when an operation requires an active theme set.
	ErrSetInactive = zerr.New("theme set is inactive")

	// ErrShortcodeNotFound is returned when a shortcode name is not registered.
	ErrShortcodeNotFound = zerr.New("shortcode not found")

	// ErrMalformedManifest is reported when a manifest file is not a valid JSON object.
	ErrMalformedManifest = zerr.New("malformed manifest")

	// ErrMalformedThemeMeta is reported when a theme.json file cannot be decoded.
	ErrMalformedThemeMeta = zerr.New("malformed theme metadata")

	// ErrCacheMiss is returned by cache stores when a key is absent or expired.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrCacheReadFailed is returned when a cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheDeleteFailed is returned when a cache entry cannot be deleted.
	ErrCacheDeleteFailed = zerr.New("failed to delete cache entry")

	// ErrOptionsReadFailed is returned when the option store cannot be read.
	ErrOptionsReadFailed = zerr.New("failed to read options")

	// ErrOptionsWriteFailed is returned when the option store cannot be written.
	ErrOptionsWriteFailed = zerr.New("failed to write options")

	// ErrOptionsOpenFailed is returned when the option database cannot be opened.
	ErrOptionsOpenFailed = zerr.New("failed to open option database")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingThemesRoot is returned when no themes root is configured.
	ErrMissingThemesRoot = zerr.New("themes root is not configured")

	// ErrInvalidCacheBackend is returned when the cache backend is unknown.
	ErrInvalidCacheBackend = zerr.New("invalid cache backend, expected 'memory', 'file' or 'redis'")

	// ErrInvalidOptionsBackend is returned when the option store backend is unknown.
	ErrInvalidOptionsBackend = zerr.New("invalid options backend, expected 'file' or 'sqlite'")

	// ErrInvalidMaxDepth is returned when the nested render depth is not positive.
	ErrInvalidMaxDepth = zerr.New("render max depth must be positive")

	// ErrInvalidMode is returned when an unknown per-set mode is toggled.
	ErrInvalidMode = zerr.New("invalid mode, expected 'manifest' or 'smart'")

	// ErrInvalidSetName is returned when an installed folder does not follow the set naming convention.
	ErrInvalidSetName = zerr.New("theme set folder must end with -templates")

	// ErrSetAlreadyExists is returned when installing over an existing set.
	ErrSetAlreadyExists = zerr.New("theme set already exists")

	// ErrInstallFailed is returned when a theme set cannot be installed.
	ErrInstallFailed = zerr.New("failed to install theme set")

	// ErrRemoveFailed is returned when a theme set cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove theme set")

	// ErrArchiveEntryOutsideRoot is returned when an archive entry escapes the extraction root.
	ErrArchiveEntryOutsideRoot = zerr.New("archive entry is outside extraction root")

	// ErrLogClearFailed is returned when the log file cannot be cleared.
	ErrLogClearFailed = zerr.New("failed to clear log file")

	// ErrWatcherStartFailed is returned when the themes root watcher cannot start.
	ErrWatcherStartFailed = zerr.New("failed to start themes watcher")
)
