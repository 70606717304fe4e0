// Package app implements the application layer for kubesetup.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/kubesetup/internal/adapters/host"   //nolint:depguard // Wired in app layer
	"go.trai.ch/kubesetup/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver ports.VersionResolver
	acquirer ports.ToolAcquirer
	cache    ports.ToolCache
	host     ports.Host
	logger   ports.Logger
	settings *domain.Settings
	getenv   func(string) string
}

// New creates a new App instance.
func New(
	resolver ports.VersionResolver,
	acquirer ports.ToolAcquirer,
	cache ports.ToolCache,
	h ports.Host,
	log ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		resolver: resolver,
		acquirer: acquirer,
		cache:    cache,
		host:     h,
		logger:   log,
		settings: settings,
		getenv:   os.Getenv,
	}
}

// WithGetenv replaces the environment lookup. Used for testing.
func (a *App) WithGetenv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// Result describes an installed tool.
type Result struct {
	Version string
	Path    string
}

// Setup resolves the requested version, acquires the binary and publishes
// its location to the host. An empty explicit specifier falls back to the
// host's version input.
func (a *App) Setup(ctx context.Context, explicit string) (Result, error) {
	specifier, err := host.RequireVersion(a.host, explicit)
	if err != nil {
		return Result{}, err
	}

	version, err := a.resolver.Resolve(ctx, specifier)
	if err != nil {
		return Result{}, err
	}
	a.logger.Info(fmt.Sprintf("resolved %s %s", a.settings.ToolName, version))

	path, err := a.acquirer.Acquire(ctx, version)
	if err != nil {
		return Result{}, err
	}

	if err := a.host.AddPath(filepath.Dir(path)); err != nil {
		return Result{}, zerr.With(zerr.Wrap(err, domain.ErrHostOutputFailed.Error()), "dir", filepath.Dir(path))
	}
	if err := a.host.SetOutput(domain.OutputPathName, path); err != nil {
		return Result{}, zerr.With(zerr.Wrap(err, domain.ErrHostOutputFailed.Error()), "output", domain.OutputPathName)
	}
	if err := a.host.SetOutput(domain.OutputVersionName, version); err != nil {
		return Result{}, zerr.With(zerr.Wrap(err, domain.ErrHostOutputFailed.Error()), "output", domain.OutputVersionName)
	}

	a.logger.Info(fmt.Sprintf("installed %s %s at %s", a.settings.ToolName, version, path))
	a.logger.Debug(fmt.Sprintf("%s tool version: '%s' has been cached at %s", a.settings.ToolName, version, path))

	return Result{Version: version, Path: path}, nil
}

// Resolve turns a specifier into a concrete version without downloading anything.
func (a *App) Resolve(ctx context.Context, specifier string) (string, error) {
	return a.resolver.Resolve(ctx, specifier)
}

// Clean removes the whole tool cache.
func (a *App) Clean(_ context.Context) error {
	root := a.cache.Root()

	a.logger.Info(fmt.Sprintf("removing tool cache %s...", root))
	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", root)
	}
	a.logger.Info("removed tool cache")
	return nil
}

// Environment variables that influence logging.
const (
	EnvRunnerDebug = "RUNNER_DEBUG"
	EnvActions     = host.EnvActions
)

// LogOptions selects the log level and format.
type LogOptions struct {
	Debug bool
	// Format is one of pretty, json or actions. Empty selects actions under
	// GitHub Actions and pretty elsewhere.
	Format string
}

type (
	debugSetter  interface{ SetDebug(enable bool) }
	formatSetter interface{ SetFormat(f logger.Format) }
)

// ConfigureLogging applies opts to the logger. RUNNER_DEBUG=1 also enables
// debug output.
func (a *App) ConfigureLogging(opts LogOptions) error {
	format := logger.FormatPretty
	switch {
	case opts.Format != "":
		f, err := logger.ParseFormat(opts.Format)
		if err != nil {
			return err
		}
		format = f
	case a.getenv(EnvActions) == "true":
		format = logger.FormatActions
	}

	if s, ok := a.logger.(formatSetter); ok {
		s.SetFormat(format)
	}
	if s, ok := a.logger.(debugSetter); ok {
		s.SetDebug(opts.Debug || a.getenv(EnvRunnerDebug) == "1")
	}
	return nil
}
