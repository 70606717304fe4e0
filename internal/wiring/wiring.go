// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kubesetup/internal/adapters/config"
	_ "go.trai.ch/kubesetup/internal/adapters/fetch"
	_ "go.trai.ch/kubesetup/internal/adapters/host"
	_ "go.trai.ch/kubesetup/internal/adapters/logger"
	_ "go.trai.ch/kubesetup/internal/adapters/platform"
	_ "go.trai.ch/kubesetup/internal/adapters/telemetry"
	_ "go.trai.ch/kubesetup/internal/adapters/toolcache"
	// Register app and engine nodes.
	_ "go.trai.ch/kubesetup/internal/app"
	_ "go.trai.ch/kubesetup/internal/engine/acquirer"
	_ "go.trai.ch/kubesetup/internal/engine/resolver"
)
