package eventlog

import (
	"fmt"

	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
)

// Sink implements ports.DiagnosticsSink by logging every diagnostic as a warning as
// soon as it is produced. Persistence happens once per batch, through the Store.
type Sink struct {
	logger ports.Logger
}

// NewSink creates a new Sink.
func NewSink(logger ports.Logger) *Sink {
	return &Sink{logger: logger}
}

// Report logs d.
func (s *Sink) Report(d domain.Diagnostic) {
	s.logger.Warn(fmt.Sprintf("%s: %s", d.Kind, d.Message))
}
