package host

import (
	"io"

	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Detect returns an ActionsHost when running under GitHub Actions and a
// LocalHost otherwise.
func Detect(getenv func(string) string, stdout io.Writer) ports.Host {
	if getenv(EnvActions) == "true" {
		return NewActionsHost(stdout)
	}
	return NewLocalHost(stdout)
}

// RequireVersion returns explicit when set, otherwise the host's version input.
// It fails with domain.ErrMissingVersion when neither is supplied.
func RequireVersion(h ports.Host, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if v := h.Input(domain.InputVersionName); v != "" {
		return v, nil
	}
	return "", zerr.With(domain.ErrMissingVersion, "input", domain.InputVersionName)
}
