// Package minify compacts rendered fragments with tdewolff/minify.
package minify

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/base47/internal/core/ports"
)

var _ ports.Minifier = (*Minifier)(nil)

// Minifier implements ports.Minifier.
type Minifier struct {
	m *minify.M
}

// New creates a Minifier that also compacts inline style and script blocks.
// End tags and attribute quotes are kept so fragments stay safe to embed.
func New() *Minifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDefaultAttrVals: true,
		KeepDocumentTags:    true,
		KeepEndTags:         true,
		KeepQuotes:          true,
	})
	return &Minifier{m: m}
}

// MinifyHTML returns the compacted fragment.
func (m *Minifier) MinifyHTML(fragment string) (string, error) {
	return m.m.String("text/html", fragment)
}
