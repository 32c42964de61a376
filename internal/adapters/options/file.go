package options

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OptionStore = (*FileStore)(nil)

// FileStore keeps every option in one JSON object on disk.
// The file is re-read on every call so edits by other processes are seen.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// GetString returns the string stored under key.
func (s *FileStore) GetString(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	v, _ := decodeString(values[key])
	return v, nil
}

// SetString stores a string value.
func (s *FileStore) SetString(_ context.Context, key, value string) error {
	return s.put(key, value)
}

// GetStrings returns the list stored under key.
func (s *FileStore) GetStrings(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return nil, err
	}
	raw, ok := values[key]
	if !ok {
		return nil, nil
	}
	list, _ := decodeStrings(raw)
	return list, nil
}

// SetStrings stores a list value.
func (s *FileStore) SetStrings(_ context.Context, key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	return s.put(key, values)
}

func (s *FileStore) put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOptionsWriteFailed.Error()), "key", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = raw
	return s.save(values)
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	values := make(map[string]json.RawMessage)
	//nolint:gosec // Path comes from configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsReadFailed.Error()), "path", s.path)
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsReadFailed.Error()), "path", s.path)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrOptionsWriteFailed.Error())
	}
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOptionsWriteFailed.Error()), "path", s.path)
	}
	//nolint:gosec // Path comes from configuration
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOptionsWriteFailed.Error()), "path", s.path)
	}
	return nil
}
