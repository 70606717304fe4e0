package toolcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kubesetup/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
)

// NodeID is the unique identifier for the tool cache Graft node.
const NodeID graft.ID = "adapter.toolcache"

func init() {
	graft.Register(graft.Node[ports.ToolCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ToolCache, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.CacheDir), nil
		},
	})
}
