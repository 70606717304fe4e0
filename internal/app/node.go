package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kubesetup/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kubesetup/internal/adapters/host"      //nolint:depguard // Wired in app layer
	"go.trai.ch/kubesetup/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kubesetup/internal/adapters/toolcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/kubesetup/internal/engine/acquirer"
	"go.trai.ch/kubesetup/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			acquirer.NodeID,
			toolcache.NodeID,
			host.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	res, err := graft.Dep[ports.VersionResolver](ctx)
	if err != nil {
		return nil, err
	}

	acq, err := graft.Dep[ports.ToolAcquirer](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.ToolCache](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Host](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(res, acq, cache, h, log, settings), nil
}
