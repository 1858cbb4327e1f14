// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/elfgen/internal/adapters/cargo"
	_ "go.trai.ch/elfgen/internal/adapters/config"
	_ "go.trai.ch/elfgen/internal/adapters/fs"
	_ "go.trai.ch/elfgen/internal/adapters/logger"
	_ "go.trai.ch/elfgen/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/elfgen/internal/app"
	_ "go.trai.ch/elfgen/internal/engine/builder"
	_ "go.trai.ch/elfgen/internal/engine/discovery"
)
