package ports

import "go.trai.ch/jsl/internal/core/domain"

// DiagnosticsSink receives non-fatal findings as they are produced.
//
//go:generate mockgen -source=diagnostics.go -destination=mocks/mock_diagnostics.go -package=mocks
type DiagnosticsSink interface {
	Report(d domain.Diagnostic)
}

// EventLog persists diagnostics across runs.
type EventLog interface {
	// Append stores the given diagnostics.
	Append(events ...domain.Diagnostic) error
	// ByCycle returns the diagnostics recorded for a cycle.
	// Returns nil, nil if the cycle has no events.
	ByCycle(cycleID string) ([]domain.Diagnostic, error)
}
