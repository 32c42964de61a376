package domain

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NaturalCompare compares two strings case-insensitively, ordering digit runs by numeric value.
// "set2" sorts before "set10".
func NaturalCompare(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				return cmp.Compare(len(na), len(nb))
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			continue
		}
		if a[i] != b[j] {
			return cmp.Compare(a[i], b[j])
		}
		i++
		j++
	}
	return cmp.Compare(len(a)-i, len(b)-j)
}

// SortNatural sorts names in natural case-insensitive order.
// Names equal under that order keep a byte-wise order so the result is stable across runs.
func SortNatural(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if c := NaturalCompare(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a title into a lowercase dash-separated token.
// Accents are folded, runs of anything outside [a-z0-9_] collapse into one dash.
// It returns an empty string when nothing usable remains.
func Slugify(title string) string {
	folded, _, err := transform.String(accentFolder, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// HandlePrefix derives a URL and filesystem safe token from a set slug.
func HandlePrefix(slug string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(slug) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	prefix := strings.Trim(b.String(), "-")
	if prefix == "" {
		return "set"
	}
	return prefix
}

// SetBaseName strips the set folder suffix from a slug.
func SetBaseName(slug string) string {
	for _, suffix := range []string{SetSuffix, LegacySetSuffix} {
		if trimmed, ok := strings.CutSuffix(slug, suffix); ok {
			return trimmed
		}
	}
	return slug
}

// IsTemplateFile reports whether a file name carries an HTML extension.
func IsTemplateFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

// TemplateStem returns the file name without its HTML extension.
func TemplateStem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}
