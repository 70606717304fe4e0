// Package config provides the settings loader for kubesetup.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the loader.
const (
	EnvCacheDir        = "KUBESETUP_CACHE_DIR"
	EnvRunnerToolCache = "RUNNER_TOOL_CACHE"
	EnvDownloadBaseURL = "KUBESETUP_BASE_URL"
	EnvBaselineVersion = "KUBESETUP_BASELINE_VERSION"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
//
// Settings are layered: built-in defaults, then the nearest kubesetup.yaml at
// or above the working directory, then the environment.
type Loader struct {
	Logger ports.Logger
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger: logger,
		Getenv: os.Getenv,
	}
}

// Load returns the settings that apply in cwd.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	home, err := homedir.Dir()
	if err != nil {
		home = os.TempDir()
	}
	settings := domain.DefaultSettings(home)

	if path, ok := findConfigFile(cwd); ok {
		l.Logger.Debug("using config file " + path)
		if err := applyFile(settings, path); err != nil {
			return nil, err
		}
	}

	if err := l.applyEnv(settings, cwd); err != nil {
		return nil, err
	}

	if err := validate(settings); err != nil {
		return nil, err
	}
	settings.BaselineVersion = domain.EnsureVPrefix(settings.BaselineVersion)

	return settings, nil
}

// findConfigFile walks from cwd to the file-system root looking for the config file.
func findConfigFile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func applyFile(settings *domain.Settings, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	setIfPresent(&settings.ToolName, file.Tool)
	setIfPresent(&settings.BaselineVersion, file.BaselineVersion)
	setIfPresent(&settings.StableVersionURL, file.StableVersionURL)
	setIfPresent(&settings.PatchVersionURLTemplate, file.PatchVersionURL)
	setIfPresent(&settings.DownloadBaseURL, file.DownloadBaseURL)

	if file.CacheDir != "" {
		dir, err := resolvePath(file.CacheDir, filepath.Dir(path))
		if err != nil {
			return err
		}
		settings.CacheDir = dir
	}

	if file.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(file.HTTPTimeout)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "httpTimeout", file.HTTPTimeout)
		}
		settings.HTTPTimeout = timeout
	}

	return nil
}

func (l *Loader) applyEnv(settings *domain.Settings, cwd string) error {
	cacheDir := l.Getenv(EnvCacheDir)
	if cacheDir == "" {
		if runnerCache := l.Getenv(EnvRunnerToolCache); runnerCache != "" {
			cacheDir = runnerCache
		}
	}
	if cacheDir != "" {
		dir, err := resolvePath(cacheDir, cwd)
		if err != nil {
			return err
		}
		settings.CacheDir = dir
	}

	setIfPresent(&settings.DownloadBaseURL, l.Getenv(EnvDownloadBaseURL))
	setIfPresent(&settings.BaselineVersion, l.Getenv(EnvBaselineVersion))
	return nil
}

// resolvePath expands a leading ~ and anchors relative paths at base.
func resolvePath(path, base string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "path", path)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(base, expanded)
	}
	return filepath.Clean(expanded), nil
}

func validate(settings *domain.Settings) error {
	if settings.ToolName == "" || strings.ContainsAny(settings.ToolName, `/\`) {
		return zerr.With(domain.ErrInvalidConfig, "tool", settings.ToolName)
	}

	spec, err := domain.ParseSpecifier(settings.BaselineVersion)
	if err != nil || spec.Latest || !spec.HasPatch() {
		return zerr.With(domain.ErrInvalidConfig, "baselineVersion", settings.BaselineVersion)
	}

	for field, value := range map[string]string{
		"stableVersionUrl": settings.StableVersionURL,
		"patchVersionUrl":  settings.PatchVersionURLTemplate,
		"downloadBaseUrl":  settings.DownloadBaseURL,
	} {
		if value == "" {
			return zerr.With(domain.ErrInvalidConfig, field, value)
		}
	}

	if settings.HTTPTimeout <= 0 {
		return zerr.With(domain.ErrInvalidConfig, "httpTimeout", settings.HTTPTimeout.String())
	}
	return nil
}

func setIfPresent(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
