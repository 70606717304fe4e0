package ports

import "go.trai.ch/kubesetup/internal/core/domain"

// PlatformDetector reports the platform binaries must be fetched for.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformDetector interface {
	Current() domain.Platform
}
