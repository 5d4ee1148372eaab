package domain

import "time"

// DiagnosticKind classifies a non-fatal resolution finding.
type DiagnosticKind string

const (
	// DiagnosticNotFound reports a registration that matched no installed version.
	DiagnosticNotFound DiagnosticKind = "MISSING_LIBRARY"
	// DiagnosticCollision reports two versions of the same library requested in one cycle.
	DiagnosticCollision DiagnosticKind = "SCRIPT_COLLISION"
)

// CollisionEvent records that a lower version of a library was displaced by a
// strictly higher version requested later in the same cycle.
type CollisionEvent struct {
	Name      InternedString
	Displaced Library
	Winner    Library
}

// Diagnostic is a non-fatal finding produced during a request cycle.
type Diagnostic struct {
	CycleID string         `json:"cycle_id"`
	Kind    DiagnosticKind `json:"kind"`
	Library string         `json:"library"`
	Version string         `json:"version,omitempty"`
	Policy  string         `json:"policy,omitempty"`
	Winner  string         `json:"winner,omitempty"`
	Message string         `json:"message"`
	Time    time.Time      `json:"time"`
}
