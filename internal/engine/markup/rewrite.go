package markup

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/base47/internal/core/domain"
)

var (
	assetAttrRe = regexp.MustCompile(`(?i)(^|\s)(src|href|data-background)\s*=\s*(["'])/?assets/`)
	assetCSSRe  = regexp.MustCompile(`(?i)url\(\s*(["']?)/?assets/`)
)

// RewriteOptions controls RewriteAssets.
type RewriteOptions struct {
	// AddVersion appends ver=Version to rewritten src and href URLs.
	AddVersion bool
	Version    string
	// Remap holds literal replacements applied before the bulk rewrite.
	Remap map[string]string
}

// RewriteAssets points relative assets/ references at baseURL.
// Attribute values of src, href and data-background and CSS url() values are
// rewritten; matching ignores case and an optional leading slash. Attribute
// names must stand alone, so data-src and similar names are left untouched.
func RewriteAssets(html, baseURL string, opts RewriteOptions) string {
	base := strings.TrimRight(baseURL, "/") + "/"

	html = applyRemap(html, opts.Remap)

	html = replaceSubmatches(assetAttrRe, html, func(m []string) string {
		return m[1] + m[2] + "=" + m[3] + base + "assets/"
	})
	html = replaceSubmatches(assetCSSRe, html, func(m []string) string {
		return "url(" + m[1] + base + "assets/"
	})

	if opts.AddVersion && opts.Version != "" {
		html = addVersion(html, base+"assets/", opts.Version)
	}
	return html
}

// applyRemap replaces manifest keys in one pass, longest key first, so a key
// that is a prefix of another never shadows it.
func applyRemap(html string, remap map[string]string) string {
	if len(remap) == 0 {
		return html
	}

	keys := make([]string, 0, len(remap))
	for k := range remap {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, remap[k])
	}
	return strings.NewReplacer(pairs...).Replace(html)
}

func addVersion(html, prefix, version string) string {
	quoted := regexp.QuoteMeta(prefix)
	for _, q := range []string{`"`, `'`} {
		re := regexp.MustCompile(`(?i)(^|\s)(src|href)\s*=\s*` + q + `(` + quoted + `[^` + q + `]*)` + q)
		html = replaceSubmatches(re, html, func(m []string) string {
			return m[1] + m[2] + "=" + q + withVersion(m[3], version) + q
		})
	}
	return html
}

// withVersion sets the ver query parameter of url, replacing any existing one.
func withVersion(url, version string) string {
	fragment := ""
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url, fragment = url[:i], url[i:]
	}

	path, query, _ := strings.Cut(url, "?")
	params := make([]string, 0, 2)
	for _, p := range strings.Split(query, "&") {
		if p == "" {
			continue
		}
		key, _, _ := strings.Cut(p, "=")
		if strings.EqualFold(key, domain.VersionParam) {
			continue
		}
		params = append(params, p)
	}
	params = append(params, domain.VersionParam+"="+version)
	return path + "?" + strings.Join(params, "&") + fragment
}

func replaceSubmatches(re *regexp.Regexp, s string, fn func([]string) string) string {
	return re.ReplaceAllStringFunc(s, func(match string) string {
		return fn(re.FindStringSubmatch(match))
	})
}
