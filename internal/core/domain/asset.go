package domain

// AssetKind distinguishes stylesheets from scripts.
type AssetKind uint8

const (
	// AssetStyle is a stylesheet rendered as a link tag.
	AssetStyle AssetKind = iota
	// AssetScript is a script rendered as a script tag.
	AssetScript
)

// String returns the short name used in asset handles.
func (k AssetKind) String() string {
	if k == AssetScript {
		return "js"
	}
	return "css"
}

// Asset is a page dependency registered by the asset loader.
type Asset struct {
	Handle  string
	URL     string
	Version string
	Kind    AssetKind
	Deps    []string
}

// AssetStrategy names the loader strategy that registered a set's assets.
type AssetStrategy string

const (
	// StrategyNone means nothing was registered.
	StrategyNone AssetStrategy = "none"
	// StrategySmart registers every scanned asset file of an opted-in set.
	StrategySmart AssetStrategy = "smart"
	// StrategyManifest registers only the files listed by the manifest.
	StrategyManifest AssetStrategy = "manifest"
	// StrategyFallback registers every scanned asset file when no other strategy applies.
	StrategyFallback AssetStrategy = "fallback"
)
