package markup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/base47/internal/engine/markup"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestStripShell_FullPage(t *testing.T) {
	got := markup.StripShell(readFixture(t, "full_page.html"))

	g := goldie.New(t)
	g.Assert(t, "strip_full_page", []byte(got))
}

func TestStripShell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fragment passes through",
			in:   "<p>Hello</p>",
			want: "<p>Hello</p>",
		},
		{
			name: "body only",
			in:   "<html><body><p>x</p></body></html>",
			want: "<p>x</p>",
		},
		{
			name: "no body tag drops head block",
			in:   "<html>\n<head><style>p{margin:0}</style></head>\n<div class=\"card\">Card</div>\n</html>",
			want: "<style>p{margin:0}</style>\n<div class=\"card\">Card</div>",
		},
		{
			name: "head without inline blocks",
			in:   "<head><title>T</title><script src=\"https://cdn.example.com/x.js\"></script></head><body>B</body>",
			want: "B",
		},
		{
			name: "asset tags removed from body",
			in:   "<body><link href=\"/assets/css/a.css\" rel=\"stylesheet\"><p>x</p><script src='assets/js/a.js'></script></body>",
			want: "<p>x</p>",
		},
		{
			name: "external scripts kept in body",
			in:   "<body><script src=\"https://cdn.example.com/x.js\"></script></body>",
			want: "<script src=\"https://cdn.example.com/x.js\"></script>",
		},
		{
			name: "data-src script is inline",
			in:   "<head><script data-src=\"x\">run()</script></head><body>B</body>",
			want: "<script data-src=\"x\">run()</script>\nB",
		},
		{
			name: "data attributes are not asset tags",
			in:   "<body><script data-src=\"assets/js/lazy.js\"></script><link data-href=\"assets/a.css\"></body>",
			want: "<script data-src=\"assets/js/lazy.js\"></script><link data-href=\"assets/a.css\">",
		},
		{
			name: "stray shell tags removed",
			in:   "<body><div>a</div></html><!doctype html></body>",
			want: "<div>a</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.StripShell(tt.in))
		})
	}
}

func TestRewriteAssets_Golden(t *testing.T) {
	opts := markup.RewriteOptions{
		AddVersion: true,
		Version:    "1700000000",
		Remap: map[string]string{
			"css/old.css": "assets/css/new.css",
			"css/old":     "nope",
		},
	}
	got := markup.RewriteAssets(readFixture(t, "rewrite.html"), "http://x/themes/foo/", opts)

	g := goldie.New(t)
	g.Assert(t, "rewrite_versioned", []byte(got))

	assert.Equal(t, got, markup.RewriteAssets(got, "http://x/themes/foo/", opts), "rewriting is idempotent")
}

func TestRewriteAssets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		base string
		opts markup.RewriteOptions
		want string
	}{
		{
			name: "root-relative image",
			in:   `<img src="/assets/logo.png">`,
			base: "http://x/themes/foo/",
			want: `<img src="http://x/themes/foo/assets/logo.png">`,
		},
		{
			name: "versioned image",
			in:   `<img src="/assets/logo.png">`,
			base: "http://x/themes/foo/",
			opts: markup.RewriteOptions{AddVersion: true, Version: "42"},
			want: `<img src="http://x/themes/foo/assets/logo.png?ver=42">`,
		},
		{
			name: "base without trailing slash",
			in:   `<a href="assets/a.pdf">`,
			base: "/themes/foo",
			want: `<a href="/themes/foo/assets/a.pdf">`,
		},
		{
			name: "existing ver replaced",
			in:   `<script src="assets/js/a.js?ver=1#top"></script>`,
			base: "/t/",
			opts: markup.RewriteOptions{AddVersion: true, Version: "2"},
			want: `<script src="/t/assets/js/a.js?ver=2#top"></script>`,
		},
		{
			name: "case insensitive",
			in:   `<IMG SRC="/ASSETS/x.png">`,
			base: "/t/",
			want: `<IMG SRC="/t/assets/x.png">`,
		},
		{
			name: "other paths untouched",
			in:   `<img src="img/x.png"><a href="/about">`,
			base: "/t/",
			opts: markup.RewriteOptions{AddVersion: true, Version: "2"},
			want: `<img src="img/x.png"><a href="/about">`,
		},
		{
			name: "data-src untouched",
			in:   `<div data-src="assets/lazy.png"><img class="x" src="assets/a.png">`,
			base: "/t/",
			opts: markup.RewriteOptions{AddVersion: true, Version: "3"},
			want: `<div data-src="assets/lazy.png"><img class="x" src="/t/assets/a.png?ver=3">`,
		},
		{
			name: "longest remap key wins",
			in:   `<img src="img/logo-dark.png"><img src="img/logo.png">`,
			base: "/t/",
			opts: markup.RewriteOptions{Remap: map[string]string{
				"img/logo":      "assets/img/brand",
				"img/logo-dark": "assets/img/brand-dark",
			}},
			want: `<img src="/t/assets/img/brand-dark.png"><img src="/t/assets/img/brand.png">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.RewriteAssets(tt.in, tt.base, tt.opts))
		})
	}
}
