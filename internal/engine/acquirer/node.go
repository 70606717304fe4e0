package acquirer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kubesetup/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kubesetup/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kubesetup/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kubesetup/internal/adapters/platform"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kubesetup/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kubesetup/internal/adapters/toolcache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
)

// NodeID is the unique identifier for the tool acquirer Graft node.
const NodeID graft.ID = "engine.acquirer"

func init() {
	graft.Register(graft.Node[ports.ToolAcquirer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			toolcache.NodeID,
			platform.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (ports.ToolAcquirer, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.ToolCache](ctx)
			if err != nil {
				return nil, err
			}

			detector, err := graft.Dep[ports.PlatformDetector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(fetcher, cache, detector, log, tracer, settings), nil
		},
	})
}
