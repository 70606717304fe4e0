// Package acquirer provides cache-aware acquisition of tool binaries.
package acquirer

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/kubesetup/internal/diag"
	"go.trai.ch/zerr"
)

// Acquirer implements ports.ToolAcquirer.
type Acquirer struct {
	fetcher  ports.Fetcher
	cache    ports.ToolCache
	detector ports.PlatformDetector
	logger   ports.Logger
	tracer   ports.Tracer
	settings *domain.Settings
}

// New creates an Acquirer for the tool named in settings.
func New(
	fetcher ports.Fetcher,
	cache ports.ToolCache,
	detector ports.PlatformDetector,
	logger ports.Logger,
	tracer ports.Tracer,
	settings *domain.Settings,
) *Acquirer {
	return &Acquirer{
		fetcher:  fetcher,
		cache:    cache,
		detector: detector,
		logger:   logger,
		tracer:   tracer,
		settings: settings,
	}
}

// Acquire returns the path of an executable for version, downloading and
// caching it when no cached copy exists for the current platform.
func (a *Acquirer) Acquire(ctx context.Context, version string) (string, error) {
	ctx, span := a.tracer.Start(ctx, "acquire")
	defer span.End()

	path, err := a.acquire(ctx, version)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("path", path)
	return path, nil
}

func (a *Acquirer) acquire(ctx context.Context, version string) (string, error) {
	tool := a.settings.ToolName
	platform := a.detector.Current()

	dir, err := a.cache.Find(tool, version, platform.Arch)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheLookupFailed.Error()), "version", version)
	}

	if dir == "" {
		dir, err = a.download(ctx, tool, version, platform)
		if err != nil {
			return "", err
		}
	} else {
		a.logger.Debug("found cached " + tool + " " + version + " in " + dir)
	}

	path := filepath.Join(dir, domain.ExecutableName(tool, platform))
	if err := os.Chmod(path, domain.ExecPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrChmodFailed.Error()), "path", path)
	}
	return path, nil
}

// download fetches the binary for version and commits it to the cache,
// returning the cache entry directory.
func (a *Acquirer) download(ctx context.Context, tool, version string, platform domain.Platform) (string, error) {
	url := domain.DownloadURL(a.settings.DownloadBaseURL, tool, version, platform)
	a.logger.Debug("downloading " + url)

	tmp, err := a.fetcher.Download(ctx, url)
	if err != nil {
		var statusErr *domain.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.NotFound() {
			return "", &domain.NotFoundError{Tool: tool, Version: version, Arch: platform.Arch}
		}
		a.logger.Debug("Download error:")
		a.logger.Debug(diag.Describe(err))
		return "", &domain.DownloadFailedError{Tool: tool, Version: version}
	}
	defer func() {
		_ = os.Remove(tmp)
	}()

	dir, err := a.cache.CacheFile(tmp, domain.ExecutableName(tool, platform), tool, version, platform.Arch)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "version", version)
	}
	return dir, nil
}
