package logger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
)

// TimeLayout is the timestamp format of log file lines.
const TimeLayout = "2006-01-02 15:04:05"

var _ ports.LogFile = (*File)(nil)

// File is a slog.Handler appending "[timestamp] [LEVEL] message" lines to a file
// and trimming it to the most recent maxLines lines after every write.
type File struct {
	mu       *sync.Mutex
	path     string
	maxLines int
	attrs    []slog.Attr
}

// NewFile creates a log file handler. A non-positive maxLines disables trimming.
func NewFile(path string, maxLines int) *File {
	return &File{mu: &sync.Mutex{}, path: path, maxLines: maxLines}
}

// Path returns the log file location.
func (f *File) Path() string {
	return f.path
}

// Clear deletes the log file. A missing file is already clear.
func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrLogClearFailed.Error()), "path", f.path)
	}
	return nil
}

// Enabled accepts every level.
func (f *File) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle appends one line for the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (f *File) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	for _, attr := range f.attrs {
		msg += " " + formatAttr("", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		msg += " " + formatAttr("", attr)
		return true
	})
	line := fmt.Sprintf("[%s] [%s] %s\n", r.Time.Format(TimeLayout), r.Level.String(), flatten(msg))

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.appendLine(line); err != nil {
		return err
	}
	return f.trim()
}

// WithAttrs returns a handler sharing the same file with extra attributes.
func (f *File) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *f
	next.attrs = append(append([]slog.Attr{}, f.attrs...), attrs...)
	return &next
}

// WithGroup ignores groups; file lines are flat.
func (f *File) WithGroup(string) slog.Handler {
	return f
}

func (f *File) appendLine(line string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create log directory")
	}
	//nolint:gosec // Path comes from configuration
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open log file"), "path", f.path)
	}
	defer file.Close() //nolint:errcheck // Best effort close after write

	if _, err := file.WriteString(line); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write log file"), "path", f.path)
	}
	return nil
}

func (f *File) trim() error {
	if f.maxLines <= 0 {
		return nil
	}
	//nolint:gosec // Path comes from configuration
	data, err := os.ReadFile(f.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read log file"), "path", f.path)
	}

	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) <= f.maxLines {
		return nil
	}

	kept := bytes.Join(lines[len(lines)-f.maxLines:], nil)
	tmp := f.path + ".tmp"
	//nolint:gosec // Path comes from configuration
	if err := os.WriteFile(tmp, kept, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to trim log file"), "path", f.path)
	}
	return os.Rename(tmp, f.path)
}

func flatten(msg string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(msg, "\n", " ")), " ")
}
