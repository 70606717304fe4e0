package ports

import "go.trai.ch/kubesetup/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges defaults, the nearest config file above cwd, and the environment.
	Load(cwd string) (*domain.Settings, error)
}
