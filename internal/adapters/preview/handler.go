// Package preview serves rendered shortcodes and theme files over HTTP.
package preview

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.trai.ch/base47/internal/core/ports"
	"go.trai.ch/zerr"
)

// ErrNotFound is returned by a Backend for an unknown shortcode.
var ErrNotFound = zerr.New("shortcode not found")

// SetView is one set on the index page.
type SetView struct {
	Slug        string
	Label       string
	Description string
	Version     string
	Accent      string
	Thumbnail   string
	Active      bool
	Default     bool
	Shortcodes  []string
}

// PageView is one rendered shortcode.
type PageView struct {
	Title  string
	HTML   string
	Head   string
	Footer string
}

// Backend supplies the content of the preview pages.
type Backend interface {
	Sets(ctx context.Context) []SetView
	Page(ctx context.Context, shortcode string) (*PageView, error)
	Refresh(ctx context.Context) error
}

// Handler routes preview requests.
type Handler struct {
	backend      Backend
	logger       ports.Logger
	md           goldmark.Markdown
	mux          *http.ServeMux
	themesRoot   string
	staticPrefix string
}

// NewHandler creates a Handler. Files below themesRoot are served under the
// path of baseURL; an empty path disables static serving.
func NewHandler(backend Backend, logger ports.Logger, themesRoot, baseURL string) *Handler {
	h := &Handler{
		backend:      backend,
		logger:       logger,
		md:           goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
		mux:          http.NewServeMux(),
		themesRoot:   themesRoot,
		staticPrefix: StaticPrefix(baseURL),
	}

	h.mux.HandleFunc("GET /{$}", h.index)
	h.mux.HandleFunc("GET /s/{name}", h.page)
	h.mux.HandleFunc("POST /refresh", h.refresh)
	if h.staticPrefix != "" {
		files := http.StripPrefix(h.staticPrefix, http.FileServer(http.Dir(themesRoot)))
		h.mux.Handle("GET "+h.staticPrefix+"/", noCache(hideDotfiles(files)))
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// StaticPrefix returns the URL path of baseURL without a trailing slash.
func StaticPrefix(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

type indexSet struct {
	SetView
	DescriptionHTML template.HTML
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	sets := h.backend.Sets(r.Context())
	view := make([]indexSet, 0, len(sets))
	for _, s := range sets {
		view = append(view, indexSet{SetView: s, DescriptionHTML: h.markdown(s.Description)})
	}

	h.write(w, indexTmpl, map[string]any{"Sets": view})
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	p, err := h.backend.Page(r.Context(), name)
	if errors.Is(err, ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error(err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	h.write(w, pageTmpl, map[string]any{
		"Title":  p.Title,
		"HTML":   template.HTML(p.HTML),   //nolint:gosec // Fragments come from installed themes.
		"Head":   template.HTML(p.Head),   //nolint:gosec // Tags are built by the asset collector.
		"Footer": template.HTML(p.Footer), //nolint:gosec // Tags are built by the asset collector.
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.Refresh(r.Context()); err != nil {
		h.logger.Error(err)
		http.Error(w, "refresh failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) markdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // Escaped above.
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark drops raw HTML without WithUnsafe.
}

func (h *Handler) write(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		h.logger.Error(err)
		http.Error(w, "template failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// noCache disables browser caching so edited theme files show up on reload.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func hideDotfiles(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, part := range strings.Split(r.URL.Path, "/") {
			if strings.HasPrefix(part, ".") {
				http.NotFound(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
