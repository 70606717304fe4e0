package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultToolName is the tool managed by kubesetup.
	DefaultToolName = "kubectl"

	// DefaultBaselineVersion is used when the stable release pointer cannot be read.
	DefaultBaselineVersion = "v1.15.0"

	// DefaultStableVersionURL points at the current stable release line.
	DefaultStableVersionURL = "https://dl.k8s.io/release/stable.txt"

	// DefaultPatchVersionURLTemplate points at the latest patch of a major.minor line.
	// The single %s verb receives "major.minor".
	DefaultPatchVersionURLTemplate = "https://cdn.dl.k8s.io/release/stable-%s.txt"

	// DefaultDownloadBaseURL is the binary release host.
	DefaultDownloadBaseURL = "https://dl.k8s.io"

	// DefaultHTTPTimeout bounds a single request made by the transport.
	DefaultHTTPTimeout = 60 * time.Second
)

// Settings holds the resolved runtime configuration.
type Settings struct {
	ToolName                string
	BaselineVersion         string
	StableVersionURL        string
	PatchVersionURLTemplate string
	DownloadBaseURL         string
	CacheDir                string
	HTTPTimeout             time.Duration
}

// DefaultSettings returns the built-in configuration with the cache rooted under home.
func DefaultSettings(home string) *Settings {
	return &Settings{
		ToolName:                DefaultToolName,
		BaselineVersion:         DefaultBaselineVersion,
		StableVersionURL:        DefaultStableVersionURL,
		PatchVersionURLTemplate: DefaultPatchVersionURLTemplate,
		DownloadBaseURL:         DefaultDownloadBaseURL,
		CacheDir:                DefaultCacheRoot(home),
		HTTPTimeout:             DefaultHTTPTimeout,
	}
}

// PatchVersionURL returns the stable-patch pointer URL for a major.minor line.
func (s *Settings) PatchVersionURL(majorMinor string) string {
	if strings.Contains(s.PatchVersionURLTemplate, "%s") {
		return fmt.Sprintf(s.PatchVersionURLTemplate, majorMinor)
	}
	return strings.TrimRight(s.PatchVersionURLTemplate, "/") + "/stable-" + majorMinor + ".txt"
}
