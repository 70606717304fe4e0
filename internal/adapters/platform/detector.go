// Package platform reports the platform tool binaries are fetched for.
package platform

import (
	"runtime"

	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
)

var _ ports.PlatformDetector = (*Detector)(nil)

// Detector implements ports.PlatformDetector.
type Detector struct {
	goos   string
	goarch string
}

// NewDetector creates a Detector for the running process.
func NewDetector() *Detector {
	return NewDetectorFor(runtime.GOOS, runtime.GOARCH)
}

// NewDetectorFor creates a Detector that reports the given OS and architecture tokens.
func NewDetectorFor(goos, goarch string) *Detector {
	return &Detector{goos: goos, goarch: goarch}
}

// Current returns the normalized platform.
func (d *Detector) Current() domain.Platform {
	return domain.NewPlatform(d.goos, d.goarch)
}
