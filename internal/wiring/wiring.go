// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/base47/internal/adapters/cache"
	_ "go.trai.ch/base47/internal/adapters/config"
	_ "go.trai.ch/base47/internal/adapters/fs"
	_ "go.trai.ch/base47/internal/adapters/logger"
	_ "go.trai.ch/base47/internal/adapters/minify"
	_ "go.trai.ch/base47/internal/adapters/options"
	_ "go.trai.ch/base47/internal/adapters/telemetry"
	_ "go.trai.ch/base47/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/base47/internal/app"
)
