package ports

import "go.trai.ch/jsl/internal/core/domain"

// Emitter registers scripts with the page being rendered.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit registers a catalog library at the given order key and location.
	Emit(lib domain.Library, order int, location domain.ScriptLocation) error
	// EmitRaw registers a script by path, bypassing the catalog.
	EmitRaw(path string, order int, location domain.ScriptLocation) error
}

// ManifestEmitter is an Emitter that records what it was given as a manifest.
type ManifestEmitter interface {
	Emitter
	// Manifest returns the registered scripts in load order.
	Manifest() domain.Manifest
}

// EmitterFactory creates a fresh emitter for each request cycle.
type EmitterFactory interface {
	New() ManifestEmitter
}
