// Package page collects the assets a rendered page depends on and prints their tags.
package page

import (
	"html"
	"net/url"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
)

var _ ports.AssetRegistry = (*Collector)(nil)

// BaselineScriptURL is printed for the baseline script handle when a
// registered script depends on it.
const BaselineScriptURL = "https://code.jquery.com/jquery-3.7.1.min.js"

// Collector is an in-memory asset registry for one page.
type Collector struct {
	mu     sync.Mutex
	assets []domain.Asset
	seen   map[string]struct{}
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Enqueue registers asset. A handle registered twice keeps the first.
func (c *Collector) Enqueue(asset domain.Asset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, dup := c.seen[asset.Handle]; dup {
		return
	}
	c.seen[asset.Handle] = struct{}{}
	c.assets = append(c.assets, asset)
}

// Assets returns the registered assets in registration order.
func (c *Collector) Assets() []domain.Asset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.assets)
}

// Styles returns the registered stylesheets.
func (c *Collector) Styles() []domain.Asset {
	return c.ofKind(domain.AssetStyle)
}

// Scripts returns the registered scripts.
func (c *Collector) Scripts() []domain.Asset {
	return c.ofKind(domain.AssetScript)
}

func (c *Collector) ofKind(kind domain.AssetKind) []domain.Asset {
	var out []domain.Asset
	for _, a := range c.Assets() {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// HeadTags prints one link tag per stylesheet.
func (c *Collector) HeadTags() string {
	var sb strings.Builder
	for _, a := range c.Styles() {
		sb.WriteString(`<link rel="stylesheet" id="` + html.EscapeString(a.Handle) + `-css" href="` +
			html.EscapeString(versioned(a.URL, a.Version)) + `">` + "\n")
	}
	return sb.String()
}

// FooterTags prints the baseline script when needed, then one script tag per script.
func (c *Collector) FooterTags() string {
	scripts := c.Scripts()

	var sb strings.Builder
	if needsBaseline(scripts) {
		sb.WriteString(`<script id="` + domain.BaselineScriptHandle + `-js" src="` + BaselineScriptURL + `"></script>` + "\n")
	}
	for _, a := range scripts {
		sb.WriteString(`<script id="` + html.EscapeString(a.Handle) + `-js" src="` +
			html.EscapeString(versioned(a.URL, a.Version)) + `"></script>` + "\n")
	}
	return sb.String()
}

func needsBaseline(scripts []domain.Asset) bool {
	for _, a := range scripts {
		if slices.Contains(a.Deps, domain.BaselineScriptHandle) {
			return true
		}
	}
	return false
}

func versioned(raw, version string) string {
	if version == "" {
		return raw
	}
	sep := "?"
	if strings.Contains(raw, "?") {
		sep = "&"
	}
	return raw + sep + domain.VersionParam + "=" + url.QueryEscape(version)
}
