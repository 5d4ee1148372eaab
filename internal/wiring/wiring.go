// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jsl/internal/adapters/catalog"
	_ "go.trai.ch/jsl/internal/adapters/config"
	_ "go.trai.ch/jsl/internal/adapters/detector"
	_ "go.trai.ch/jsl/internal/adapters/eventlog"
	_ "go.trai.ch/jsl/internal/adapters/logger"
	_ "go.trai.ch/jsl/internal/adapters/manifest"
	_ "go.trai.ch/jsl/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/jsl/internal/app"
	_ "go.trai.ch/jsl/internal/engine/cycle"
)
