package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kubesetup/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.HTTPTimeout), nil
		},
	})
}
