package ports

import "go.trai.ch/base47/internal/core/domain"

// AssetRegistry collects the page dependencies registered during a render.
//
//go:generate mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetRegistry interface {
	// Enqueue registers an asset. Registering a handle twice keeps the first.
	Enqueue(asset domain.Asset)
}
