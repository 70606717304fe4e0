package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/kubesetup/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the loaded settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loadSettings(loader, os.Getwd)
		},
	})
}

// loadSettings loads the settings that apply to the working directory.
func loadSettings(loader ports.ConfigLoader, getwd func() (string, error)) (*domain.Settings, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	return loader.Load(cwd)
}
