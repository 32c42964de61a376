package domain

import "fmt"

// RenderKind tags the outcome of a template render.
type RenderKind uint8

const (
	// RenderOK means the fragment was produced.
	RenderOK RenderKind = iota
	// RenderNotFound means no set holds the requested file.
	RenderNotFound
	// RenderInactive means the resolved set is disabled.
	RenderInactive
)

// String returns the lowercase name of the kind.
func (k RenderKind) String() string {
	switch k {
	case RenderOK:
		return "ok"
	case RenderNotFound:
		return "not_found"
	case RenderInactive:
		return "inactive"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// RenderResult is the tagged result of rendering one template.
type RenderResult struct {
	Kind     RenderKind
	HTML     string
	Set      string
	File     string
	Strategy AssetStrategy
}

// InactiveMarker is the HTML comment rendered in place of a disabled set's template.
func InactiveMarker(slug string) string {
	return fmt.Sprintf("<!-- base47: theme set %q is inactive -->", slug)
}
