// Package output builds termenv outputs with kubesetup's colour policy.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile picks the colour profile for log output.
//
// NO_COLOR disables colour. GitHub Actions logs render ANSI colours even
// though stderr is not a terminal, so ANSI is forced there. Everywhere else
// the terminal is asked.
func ColorProfile() termenv.Profile {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return termenv.Ascii
	case os.Getenv("GITHUB_ACTIONS") == "true":
		return termenv.ANSI
	default:
		return termenv.EnvColorProfile()
	}
}

// New creates a termenv.Output for w using ColorProfile.
// A nil writer means os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
