// Package config provides the configuration loader for base47.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration at path on top of the defaults.
// An empty path means base47.yaml in the working directory. A missing file is not an error.
// Relative paths inside the file resolve against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}

	cfg := domain.DefaultConfig()
	_, statErr := os.Stat(path)
	if explicit || !errors.Is(statErr, fs.ErrNotExist) {
		if err := readAndUnmarshalYAML(path, &cfg); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	resolvePaths(filepath.Dir(path), &cfg)
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &cfg, nil
}

func resolvePaths(configDir string, cfg *domain.Config) {
	cfg.ThemesRoot = resolvePath(configDir, cfg.ThemesRoot)
	cfg.Cache.Dir = resolvePath(configDir, cfg.Cache.Dir)
	cfg.Options.Path = resolvePath(configDir, cfg.Options.Path)
	if cfg.Log.File != "" {
		cfg.Log.File = resolvePath(configDir, cfg.Log.File)
	}
}

func resolvePath(configDir, configured string) string {
	if configured == "" || filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the operator
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
