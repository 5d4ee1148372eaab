package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsl/internal/adapters/config"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
)

// OpenerNodeID is the unique identifier for the catalog opener Graft node.
const OpenerNodeID graft.ID = "adapter.catalog_opener"

func init() {
	graft.Register(graft.Node[ports.CatalogOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CatalogOpener, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(settings.CacheTTL), nil
		},
	})
}
