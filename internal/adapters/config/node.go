package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/jsl/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the settings Graft node.
	NodeID graft.ID = "adapter.settings"
	// PageLoaderNodeID is the unique identifier for the page loader Graft node.
	PageLoaderNodeID graft.ID = "adapter.page_loader"
)

// SettingsPathEnv names the environment variable holding an explicit settings file path.
const SettingsPathEnv = "JSL_CONFIG"

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Settings, error) {
			return LoadSettings(os.Getenv(SettingsPathEnv))
		},
	})

	graft.Register(graft.Node[ports.PageLoader]{
		ID:        PageLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PageLoader, error) {
			return NewPageLoader(), nil
		},
	})
}
