package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsl/internal/core/ports"
)

// NodeID is the unique identifier for the emitter factory Graft node.
const NodeID graft.ID = "adapter.emitter_factory"

func init() {
	graft.Register(graft.Node[ports.EmitterFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EmitterFactory, error) {
			return NewFactory(), nil
		},
	})
}
