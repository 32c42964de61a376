package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*FileStore)(nil)

type fileEntry struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileStore keeps one JSON file per key below a directory.
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore creates a store rooted at dir. The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, now: time.Now}
}

// WithClock replaces the time source used for expiry.
func (s *FileStore) WithClock(now func() time.Time) *FileStore {
	s.now = now
	return s
}

// Get returns the value stored under key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A torn or foreign file is as good as absent.
		return nil, domain.ErrCacheMiss
	}
	if expired(entry.ExpiresAt, s.now()) {
		return nil, domain.ErrCacheMiss
	}
	return entry.Value, nil
}

// Set stores value under key for ttl.
func (s *FileStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	data, err := json.MarshalIndent(fileEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: expiry(s.now(), ttl),
	}, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "dir", s.dir)
	}

	tmp := s.filename(key) + ".tmp"
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	if err := os.Rename(tmp, s.filename(key)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	return nil
}

// Delete removes the given keys.
func (s *FileStore) Delete(_ context.Context, keys ...string) error {
	var errs error
	for _, key := range keys {
		if err := os.Remove(s.filename(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCacheDeleteFailed.Error()), "key", key))
		}
	}
	return errs
}

func (s *FileStore) filename(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

func expired(expiresAt, now time.Time) bool {
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}
