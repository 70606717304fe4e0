// Package resolver turns user-supplied version specifiers into fully qualified versions.
package resolver

import (
	"context"
	"strings"

	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/kubesetup/internal/diag"
)

const (
	// WarnStableVersionFailed is logged when the stable pointer cannot be read
	// and the baseline version is used instead.
	WarnStableVersionFailed = "GetStableVersionFailed"

	// WarnPatchVersionFailed is logged when the patch pointer of a major.minor line cannot be read.
	WarnPatchVersionFailed = "GetLatestPatchVersionFailed"
)

// Resolver implements ports.VersionResolver against the remote release pointers.
type Resolver struct {
	fetcher  ports.Fetcher
	logger   ports.Logger
	tracer   ports.Tracer
	settings *domain.Settings
}

// New creates a Resolver. settings supplies the pointer URLs and the baseline version.
func New(fetcher ports.Fetcher, logger ports.Logger, tracer ports.Tracer, settings *domain.Settings) *Resolver {
	return &Resolver{
		fetcher:  fetcher,
		logger:   logger,
		tracer:   tracer,
		settings: settings,
	}
}

// Resolve returns the v-prefixed major.minor.patch version selected by specifier.
//
// "latest" never fails: when the stable pointer is unavailable the baseline
// version is returned. A major.minor specifier whose patch pointer is
// unavailable fails with *domain.PatchResolutionFailedError.
func (r *Resolver) Resolve(ctx context.Context, specifier string) (string, error) {
	ctx, span := r.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("specifier", specifier)

	spec, err := domain.ParseSpecifier(specifier)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	var version string
	switch {
	case spec.Latest:
		version = r.latestStable(ctx)
	case spec.HasPatch():
		version = domain.EnsureVPrefix(spec.Raw)
	default:
		version, err = r.latestPatch(ctx, spec.MajorMinor())
		if err != nil {
			span.RecordError(err)
			return "", err
		}
	}

	span.SetAttribute("version", version)
	return version, nil
}

func (r *Resolver) latestStable(ctx context.Context) string {
	version, err := r.fetchPointer(ctx, r.settings.StableVersionURL)
	if err != nil {
		r.logFailure(err)
		r.logger.Warn(WarnStableVersionFailed)
		return r.settings.BaselineVersion
	}
	return version
}

func (r *Resolver) latestPatch(ctx context.Context, majorMinor string) (string, error) {
	version, err := r.fetchPointer(ctx, r.settings.PatchVersionURL(majorMinor))
	if err != nil {
		r.logFailure(err)
		r.logger.Warn(WarnPatchVersionFailed)
		return "", &domain.PatchResolutionFailedError{MajorMinor: majorMinor}
	}
	return version, nil
}

// fetchPointer reads a single-line version pointer. An empty body is a failure.
func (r *Resolver) fetchPointer(ctx context.Context, url string) (string, error) {
	body, err := r.fetcher.FetchText(ctx, url)
	if err != nil {
		return "", err
	}

	version := strings.TrimSpace(body)
	if version == "" {
		return "", &emptyPointerError{URL: url}
	}
	return version, nil
}

func (r *Resolver) logFailure(err error) {
	r.logger.Debug("Download error:")
	r.logger.Debug(diag.Describe(err))
}

// emptyPointerError reports a pointer document with no version in it.
type emptyPointerError struct {
	URL string
}

func (e *emptyPointerError) Error() string {
	return "empty version pointer at " + e.URL
}
