// Package commands implements the CLI commands for kubesetup.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kubesetup/internal/app"
	"go.trai.ch/kubesetup/internal/build"
)

// CLI represents the command line interface for kubesetup.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	debug     bool
	logFormat string
}

// Application represents the application logic interface.
type Application interface {
	Setup(ctx context.Context, explicit string) (app.Result, error)
	Resolve(ctx context.Context, specifier string) (string, error)
	Clean(ctx context.Context) error
	ConfigureLogging(opts app.LogOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "kubesetup",
		Short: "Install a pinned kubectl into a cached tool directory",
		Long: "kubesetup resolves a kubectl version specifier (latest, 1.27 or v1.27.15),\n" +
			"downloads the matching binary once and puts it on PATH.\n" +
			"Without a subcommand it installs the version requested by the host.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.app.ConfigureLogging(app.LogOptions{Debug: c.debug, Format: c.logFormat})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Setup(cmd.Context(), "")
			return err
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable debug output (also RUNNER_DEBUG=1)")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "",
		"Log format: pretty, json or actions (default: actions under GitHub Actions, pretty otherwise)")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
