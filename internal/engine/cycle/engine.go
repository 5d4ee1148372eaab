// Package cycle implements the per-request script registration lifecycle.
package cycle

import (
	"time"

	"github.com/google/uuid"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/jsl/internal/engine/resolver"
)

// Engine starts request cycles. It holds the collaborators shared by every cycle;
// all per-request state lives in the Cycle it returns.
type Engine struct {
	detector  ports.InstallDetector
	sink      ports.DiagnosticsSink
	telemetry ports.Telemetry
	now       func() time.Time
	newID     func() string
}

// NewEngine creates a new Engine.
func NewEngine(detector ports.InstallDetector, sink ports.DiagnosticsSink, telemetry ports.Telemetry) *Engine {
	return &Engine{
		detector:  detector,
		sink:      sink,
		telemetry: telemetry,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Begin starts a cycle for the request at url. Scripts are resolved against catalog
// and handed to emitter when the cycle is finalized.
func (e *Engine) Begin(url string, catalog ports.Catalog, emitter ports.Emitter) *Cycle {
	return &Cycle{
		id:          e.newID(),
		url:         url,
		installMode: e.detector.IsInstallRequest(url),
		resolver:    resolver.New(catalog),
		emitter:     emitter,
		sink:        e.sink,
		telemetry:   e.telemetry,
		now:         e.now,
	}
}
