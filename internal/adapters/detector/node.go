package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsl/internal/adapters/config"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
)

// InstallNodeID is the unique identifier for the install detector Graft node.
const InstallNodeID graft.ID = "adapter.install_detector"

func init() {
	graft.Register(graft.Node[ports.InstallDetector]{
		ID:        InstallNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.InstallDetector, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstallDetector(settings.InstallURLPatterns), nil
		},
	})
}
