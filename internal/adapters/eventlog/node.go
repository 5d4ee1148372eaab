package eventlog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsl/internal/adapters/config"
	"go.trai.ch/jsl/internal/adapters/logger"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the event log store Graft node.
	StoreNodeID graft.ID = "adapter.event_log"
	// SinkNodeID is the unique identifier for the diagnostics sink Graft node.
	SinkNodeID graft.ID = "adapter.diagnostics_sink"
)

func init() {
	graft.Register(graft.Node[ports.EventLog]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.EventLog, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.EventLogPath)
		},
	})

	graft.Register(graft.Node[ports.DiagnosticsSink]{
		ID:        SinkNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DiagnosticsSink, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSink(log), nil
		},
	})
}
