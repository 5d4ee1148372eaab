package cycle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsl/internal/adapters/detector"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsl/internal/adapters/eventlog"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsl/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jsl/internal/core/ports"
)

// NodeID is the unique identifier for the cycle engine Graft node.
const NodeID graft.ID = "engine.cycle"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			detector.InstallNodeID,
			eventlog.SinkNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			installDetector, err := graft.Dep[ports.InstallDetector](ctx)
			if err != nil {
				return nil, err
			}

			sink, err := graft.Dep[ports.DiagnosticsSink](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(installDetector, sink, telemetry), nil
		},
	})
}
