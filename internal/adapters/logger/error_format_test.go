package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/base47/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Run("standard error", func(t *testing.T) {
		assert.Equal(t, []string{"boom"}, logger.CollectErrorEntries(errors.New("boom")))
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.Wrap(errors.New("disk full"), "failed to write cache entry")
		assert.Equal(t, []string{"failed to write cache entry", "disk full"}, logger.CollectErrorEntries(err))
	})
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"top", "middle\ndetail", "root"})
	want := "Error: top\n\n  Caused by:\n    → middle\n      detail\n    → root"
	assert.Equal(t, want, got)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "a b c", logger.Flatten("a\n  b\tc"))
}
