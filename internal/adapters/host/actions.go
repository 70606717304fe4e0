// Package host implements the automation environments kubesetup runs in.
package host

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables of the GitHub Actions runner.
const (
	EnvActions = "GITHUB_ACTIONS"
	EnvOutput  = "GITHUB_OUTPUT"
	EnvPath    = "GITHUB_PATH"
)

var _ ports.Host = (*ActionsHost)(nil)

// ActionsHost is the GitHub Actions runner.
//
// Inputs come from INPUT_<NAME> variables. Outputs and PATH entries are
// appended to the files named by GITHUB_OUTPUT and GITHUB_PATH.
type ActionsHost struct {
	getenv func(string) string
	setenv func(string, string) error
	stdout io.Writer
}

// NewActionsHost creates an ActionsHost reading the process environment.
func NewActionsHost(stdout io.Writer) *ActionsHost {
	return &ActionsHost{
		getenv: os.Getenv,
		setenv: os.Setenv,
		stdout: stdout,
	}
}

// Input returns the trimmed value of INPUT_<NAME>.
func (h *ActionsHost) Input(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(h.getenv(key))
}

// SetOutput appends name=value to the GITHUB_OUTPUT file. Without one, the
// legacy set-output workflow command is written to stdout.
func (h *ActionsHost) SetOutput(name, value string) error {
	path := h.getenv(EnvOutput)
	if path == "" {
		_, err := fmt.Fprintf(h.stdout, "::set-output name=%s::%s\n", name, actionsEscaper.Replace(value))
		return err
	}

	delimiter := "ghadelimiter_" + uuid.NewString()
	entry := fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	if err := appendFile(path, entry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHostOutputFailed.Error()), "output", name)
	}
	return nil
}

// AddPath prepends dir to PATH for this process and, through GITHUB_PATH,
// for every later step of the job.
func (h *ActionsHost) AddPath(dir string) error {
	if path := h.getenv(EnvPath); path != "" {
		if err := appendFile(path, dir+"\n"); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrHostOutputFailed.Error()), "path", dir)
		}
	}
	return prependPath(h.getenv, h.setenv, dir)
}

var actionsEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

func appendFile(path, content string) error {
	//nolint:gosec // Path is supplied by the runner
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func prependPath(getenv func(string) string, setenv func(string, string) error, dir string) error {
	current := getenv("PATH")
	for _, entry := range filepath.SplitList(current) {
		if entry == dir {
			return nil
		}
	}

	updated := dir
	if current != "" {
		updated = dir + string(os.PathListSeparator) + current
	}
	if err := setenv("PATH", updated); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHostOutputFailed.Error()), "path", dir)
	}
	return nil
}
