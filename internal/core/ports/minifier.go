package ports

// Minifier compacts rendered HTML fragments.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// MinifyHTML returns the compacted fragment.
	MinifyHTML(html string) (string, error)
}
