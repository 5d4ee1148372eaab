package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsl/internal/adapters/catalog"  //nolint:depguard // Wired in app layer
	"go.trai.ch/jsl/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/jsl/internal/adapters/eventlog" //nolint:depguard // Wired in app layer
	"go.trai.ch/jsl/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/jsl/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
	"go.trai.ch/jsl/internal/engine/cycle"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.OpenerNodeID,
			config.PageLoaderNodeID,
			cycle.NodeID,
			manifest.NodeID,
			logger.NodeID,
			eventlog.StoreNodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	opener, err := graft.Dep[ports.CatalogOpener](ctx)
	if err != nil {
		return nil, err
	}

	pages, err := graft.Dep[ports.PageLoader](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*cycle.Engine](ctx)
	if err != nil {
		return nil, err
	}

	emitters, err := graft.Dep[ports.EmitterFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	events, err := graft.Dep[ports.EventLog](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(opener, pages, engine, emitters, log, events, settings), nil
}
