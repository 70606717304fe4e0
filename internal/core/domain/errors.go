package domain

import (
	"fmt"
	"net/http"

	"go.trai.ch/zerr"
)

var (
	// ErrMissingVersion is returned when no version specifier was supplied by the host.
	ErrMissingVersion = zerr.New("input required and not supplied: version")

	// ErrFetchFailed is returned when a remote resource cannot be fetched.
	ErrFetchFailed = zerr.New("failed to fetch remote resource")

	// ErrDownloadWriteFailed is returned when a downloaded payload cannot be written to disk.
	ErrDownloadWriteFailed = zerr.New("failed to write downloaded file")

	// ErrCacheCreateFailed is returned when the tool cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create tool cache directory")

	// ErrCacheLookupFailed is returned when the tool cache cannot be queried.
	ErrCacheLookupFailed = zerr.New("failed to look up tool cache")

	// ErrCacheStoreFailed is returned when a file cannot be committed to the tool cache.
	ErrCacheStoreFailed = zerr.New("failed to store file in tool cache")

	// ErrCacheMarkerFailed is returned when the cache completion marker cannot be written.
	ErrCacheMarkerFailed = zerr.New("failed to write tool cache marker")

	// ErrChmodFailed is returned when the executable bit cannot be set on the cached binary.
	ErrChmodFailed = zerr.New("failed to mark tool as executable")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrHostOutputFailed is returned when a value cannot be published to the host environment.
	ErrHostOutputFailed = zerr.New("failed to publish output to host")

	// ErrCleanFailed is returned when the tool cache cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove tool cache")
)

// InvalidSpecifierError is returned when a version specifier is neither "latest"
// nor of the form major.minor[.patch].
type InvalidSpecifierError struct {
	Input string
}

func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf(
		"invalid version format %q: version must be in \"major.minor\" or \"major.minor.patch\" format "+
			"(e.g. \"1.27\" or \"v1.27.15\")",
		e.Input,
	)
}

// PatchResolutionFailedError is returned when the latest patch release of a
// major.minor line cannot be determined.
type PatchResolutionFailedError struct {
	MajorMinor string
}

func (e *PatchResolutionFailedError) Error() string {
	return fmt.Sprintf("failed to get latest patch version for %s", e.MajorMinor)
}

// NotFoundError signals that the upstream host has no binary for the
// requested version and architecture.
type NotFoundError struct {
	Tool    string
	Version string
	Arch    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' for '%s' arch not found", e.Tool, e.Version, e.Arch)
}

// DownloadFailedError is returned for every download failure other than a
// missing upstream binary. It intentionally carries no transport detail.
type DownloadFailedError struct {
	Tool    string
	Version string
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("failed to download %s %s", e.Tool, e.Version)
}

// HTTPStatusError is returned by the transport when a server answers with a
// non-success status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Code returns the HTTP status code.
func (e *HTTPStatusError) Code() int {
	return e.StatusCode
}

// NotFound reports whether the server answered 404.
func (e *HTTPStatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
