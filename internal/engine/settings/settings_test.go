package settings_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/base47/internal/adapters/options"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports/mocks"
	"go.trai.ch/base47/internal/engine/settings"
	"go.uber.org/mock/gomock"
)

func TestDefaultSet(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	store := options.NewFileStore(filepath.Join(t.TempDir(), "options.json"))

	s := settings.New(store, logger, "fallback-templates")
	assert.Equal(t, "fallback-templates", s.DefaultSet(ctx))

	require.NoError(t, s.SetDefaultSet(ctx, "mivon-templates"))
	assert.Equal(t, "mivon-templates", s.DefaultSet(ctx))

	require.NoError(t, s.SetDefaultSet(ctx, ""))
	assert.Equal(t, "fallback-templates", s.DefaultSet(ctx))
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	store := options.NewFileStore(filepath.Join(t.TempDir(), "options.json"))
	s := settings.New(store, logger, "")

	require.NoError(t, s.Toggle(ctx, domain.OptionSmartSets, "a-templates", true))
	require.NoError(t, s.Toggle(ctx, domain.OptionSmartSets, "a-templates", true))
	require.NoError(t, s.Toggle(ctx, domain.OptionSmartSets, "b-templates", true))
	assert.Equal(t, []string{"a-templates", "b-templates"}, s.List(ctx, domain.OptionSmartSets))
	assert.True(t, s.InList(ctx, domain.OptionSmartSets, "b-templates"))

	require.NoError(t, s.Toggle(ctx, domain.OptionSmartSets, "a-templates", false))
	assert.Equal(t, []string{"b-templates"}, s.List(ctx, domain.OptionSmartSets))
	assert.False(t, s.InList(ctx, domain.OptionManifestSets, "b-templates"))
}

func TestListCompacts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	store := mocks.NewMockOptionStore(ctrl)
	s := settings.New(store, logger, "")

	store.EXPECT().GetStrings(ctx, domain.OptionActiveSets).Return([]string{"a", "", "b", "a"}, nil)
	assert.Equal(t, []string{"a", "b"}, s.List(ctx, domain.OptionActiveSets))

	readErr := errors.New("locked")
	store.EXPECT().GetStrings(ctx, domain.OptionActiveSets).Return(nil, readErr)
	logger.EXPECT().Error(readErr)
	assert.Empty(t, s.List(ctx, domain.OptionActiveSets))
}
