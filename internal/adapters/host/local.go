package host

import (
	"fmt"
	"io"
	"os"

	"go.trai.ch/kubesetup/internal/core/ports"
	"golang.org/x/term"
)

var _ ports.Host = (*LocalHost)(nil)

// LocalHost is an interactive shell or a plain script.
//
// It has no named inputs. Outputs are printed as name=value lines; when the
// output is a terminal, AddPath also prints the export line to run.
type LocalHost struct {
	out        io.Writer
	isTerminal bool
}

// NewLocalHost creates a LocalHost printing to out.
func NewLocalHost(out io.Writer) *LocalHost {
	isTerminal := false
	if f, ok := out.(*os.File); ok {
		isTerminal = term.IsTerminal(int(f.Fd()))
	}
	return &LocalHost{out: out, isTerminal: isTerminal}
}

// Input always returns "".
func (h *LocalHost) Input(_ string) string {
	return ""
}

// SetOutput prints name=value.
func (h *LocalHost) SetOutput(name, value string) error {
	_, err := fmt.Fprintf(h.out, "%s=%s\n", name, value)
	return err
}

// AddPath prints a shell export line on a terminal and does nothing otherwise.
func (h *LocalHost) AddPath(dir string) error {
	if !h.isTerminal {
		return nil
	}
	_, err := fmt.Fprintf(h.out, "export PATH=%q:\"$PATH\"\n", dir)
	return err
}
