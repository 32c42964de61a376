package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/base47/cmd/base47/commands"
	"go.trai.ch/base47/internal/app"
	"go.trai.ch/base47/internal/build"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/engine/shortcode"
)

type call struct {
	method string
	args   []any
}

type mockApp struct {
	calls []call
	err   error
	page  *app.Page
}

func (m *mockApp) record(method string, args ...any) {
	m.calls = append(m.calls, call{method: method, args: args})
}

func (m *mockApp) RenderShortcode(_ context.Context, name string, opts app.RenderOptions) (*app.Page, error) {
	m.record("RenderShortcode", name, opts)
	return m.page, m.err
}

func (m *mockApp) RenderTemplate(_ context.Context, set, file string) (*app.Page, error) {
	m.record("RenderTemplate", set, file)
	return m.page, m.err
}

func (m *mockApp) ListSets(context.Context) []app.SetInfo {
	m.record("ListSets")
	return []app.SetInfo{
		{ThemeSet: domain.ThemeSet{Slug: "demo-templates", Label: "Demo"}, Active: true, Default: true, Templates: 2},
		{ThemeSet: domain.ThemeSet{Slug: "zeta-templates", Label: "Zeta"}, Templates: 1},
	}
}

func (m *mockApp) ListTemplates(_ context.Context, set string) ([]app.TemplateInfo, error) {
	m.record("ListTemplates", set)
	return []app.TemplateInfo{{Set: "demo-templates", File: "index.html"}}, m.err
}

func (m *mockApp) ListShortcodes(_ context.Context, includeInactive bool) []shortcode.Entry {
	m.record("ListShortcodes", includeInactive)
	return []shortcode.Entry{
		{Name: "base47-demo-index", Set: "demo-templates", File: "index.html"},
		{Name: "base47-index", Set: "demo-templates", File: "index.html", Alias: true},
	}
}

func (m *mockApp) Refresh(context.Context) error {
	m.record("Refresh")
	return m.err
}

func (m *mockApp) Activate(_ context.Context, slugs ...string) error {
	m.record("Activate", slugs)
	return m.err
}

func (m *mockApp) Deactivate(_ context.Context, slugs ...string) error {
	m.record("Deactivate", slugs)
	return m.err
}

func (m *mockApp) SetDefault(_ context.Context, slug string) error {
	m.record("SetDefault", slug)
	return m.err
}

func (m *mockApp) SetMode(_ context.Context, mode, slug string, on bool) error {
	m.record("SetMode", mode, slug, on)
	return m.err
}

func (m *mockApp) Install(_ context.Context, source string, opts app.InstallOptions) (string, error) {
	m.record("Install", source, opts)
	return "shop-templates", m.err
}

func (m *mockApp) Remove(_ context.Context, slug string) error {
	m.record("Remove", slug)
	return m.err
}

func (m *mockApp) ClearLogs(context.Context) error {
	m.record("ClearLogs")
	return m.err
}

func (m *mockApp) Watch(_ context.Context, notify func([]string)) error {
	m.record("Watch")
	notify([]string{"/themes/demo-templates/index.html"})
	return m.err
}

func (m *mockApp) Serve(_ context.Context, opts app.ServeOptions) error {
	m.record("Serve", opts)
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Render(t *testing.T) {
	page := &app.Page{
		RenderResult: domain.RenderResult{HTML: "<p>Hi</p>"},
		Head:         "<link>\n",
		Footer:       "<script></script>\n",
	}

	t.Run("shortcode", func(t *testing.T) {
		m := &mockApp{page: page}
		out, err := execute(t, m, "render", "base47-demo-index", "--all")
		require.NoError(t, err)
		assert.Equal(t, "<p>Hi</p>\n", out)
		require.Len(t, m.calls, 1)
		assert.Equal(t, call{"RenderShortcode", []any{"base47-demo-index", app.RenderOptions{IncludeInactive: true}}}, m.calls[0])
	})

	t.Run("template file with assets", func(t *testing.T) {
		m := &mockApp{page: page}
		out, err := execute(t, m, "render", "index.html", "--set", "demo-templates", "--assets")
		require.NoError(t, err)
		assert.Equal(t, "<link>\n<p>Hi</p>\n<script></script>\n", out)
		assert.Equal(t, call{"RenderTemplate", []any{"demo-templates", "index.html"}}, m.calls[0])
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "render", "base47-x")
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_ListSets(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "list", "sets")
		require.NoError(t, err)
		assert.Contains(t, out, "demo-templates")
		assert.Contains(t, out, "zeta-templates")
		assert.Contains(t, out, "MANIFEST")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "list", "sets", "-o", "json")
		require.NoError(t, err)

		var sets []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &sets))
		require.Len(t, sets, 2)
		assert.Equal(t, true, sets[0]["active"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "list", "sets", "--output", "yaml")
		require.ErrorContains(t, err, "unknown output format")
	})
}

func TestCommands_ListShortcodes(t *testing.T) {
	m := &mockApp{}
	out, err := execute(t, m, "list", "shortcodes", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "[base47-demo-index]")
	assert.NotContains(t, out, "[base47-index]")
	assert.Equal(t, call{"ListShortcodes", []any{true}}, m.calls[0])

	out, err = execute(t, m, "list", "shortcodes", "--aliases")
	require.NoError(t, err)
	assert.Contains(t, out, "[base47-index]")
}

func TestCommands_ListTemplates(t *testing.T) {
	m := &mockApp{}
	out, err := execute(t, m, "list", "templates", "--set", "demo-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "index.html")
	assert.Equal(t, call{"ListTemplates", []any{"demo-templates"}}, m.calls[0])
}

func TestCommands_Switches(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want call
	}{
		{name: "refresh", args: []string{"refresh"}, want: call{"Refresh", nil}},
		{name: "activate", args: []string{"activate", "a-templates", "b-templates"}, want: call{"Activate", []any{[]string{"a-templates", "b-templates"}}}},
		{name: "deactivate", args: []string{"deactivate", "a-templates"}, want: call{"Deactivate", []any{[]string{"a-templates"}}}},
		{name: "default", args: []string{"default", "a-templates"}, want: call{"SetDefault", []any{"a-templates"}}},
		{name: "mode on", args: []string{"mode", "manifest", "a-templates", "on"}, want: call{"SetMode", []any{"manifest", "a-templates", true}}},
		{name: "mode off", args: []string{"mode", "smart", "a-templates", "OFF"}, want: call{"SetMode", []any{"smart", "a-templates", false}}},
		{name: "install", args: []string{"install", "shop.zip", "--name", "shop", "--force"}, want: call{"Install", []any{"shop.zip", app.InstallOptions{Name: "shop", Force: true}}}},
		{name: "remove", args: []string{"remove", "a-templates"}, want: call{"Remove", []any{"a-templates"}}},
		{name: "logs clear", args: []string{"logs", "clear"}, want: call{"ClearLogs", nil}},
		{name: "serve", args: []string{"serve", "--addr", ":9000", "--watch"}, want: call{"Serve", []any{app.ServeOptions{Addr: ":9000", Watch: true}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			require.Len(t, m.calls, 1)
			assert.Equal(t, tt.want, m.calls[0])
		})
	}
}

func TestCommands_ModeRejectsState(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "mode", "smart", "a-templates", "maybe")
	require.ErrorContains(t, err, "expected 'on' or 'off'")
	assert.Empty(t, m.calls)
}

func TestCommands_Watch(t *testing.T) {
	out, err := execute(t, &mockApp{}, "watch")
	require.NoError(t, err)
	assert.Contains(t, out, "demo-templates/index.html")
}

func TestCommands_GlobalFlagsAccepted(t *testing.T) {
	_, err := execute(t, &mockApp{}, "--root", "themes", "--json", "--trace", "refresh")
	require.NoError(t, err)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, build.Commit)
}
