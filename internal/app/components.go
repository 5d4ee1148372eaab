package app

import "go.trai.ch/jsl/internal/core/ports"

// Components holds the objects the command line layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
