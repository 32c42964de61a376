package domain

// Manifest is the decoded form of a set's manifest.json plus fields derived from its set.
type Manifest struct {
	// Assets maps an original reference to its replacement, applied literally.
	Assets map[string]string `json:"assets"`
	CSS    []string          `json:"css"`
	JS     []string          `json:"js"`
	Global ManifestGlobal    `json:"global"`

	SetSlug      string `json:"-"`
	BaseURL      string `json:"-"`
	BasePath     string `json:"-"`
	HandlePrefix string `json:"-"`
}

// ManifestGlobal holds the fallback asset lists of a manifest.
type ManifestGlobal struct {
	CSS []string `json:"css"`
	JS  []string `json:"js"`
}

// Styles returns the stylesheet list, falling back to the global list when empty.
func (m *Manifest) Styles() []string {
	if len(m.CSS) > 0 {
		return m.CSS
	}
	return m.Global.CSS
}

// Scripts returns the script list, falling back to the global list when empty.
func (m *Manifest) Scripts() []string {
	if len(m.JS) > 0 {
		return m.JS
	}
	return m.Global.JS
}
