// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kitfetch/internal/adapters/archive"
	_ "go.trai.ch/kitfetch/internal/adapters/config"
	_ "go.trai.ch/kitfetch/internal/adapters/display"
	_ "go.trai.ch/kitfetch/internal/adapters/logger"
	_ "go.trai.ch/kitfetch/internal/adapters/repo"
	// Register app and engine nodes.
	_ "go.trai.ch/kitfetch/internal/app"
	_ "go.trai.ch/kitfetch/internal/engine/catalog"
)
