package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install [version]",
		Short: "Resolve, download and cache kubectl, then add it to PATH",
		Long: "Install resolves the version specifier, reuses a cached binary when present\n" +
			"and otherwise downloads it. Without an argument the host's version input is used.",
		Example: "  kubesetup install latest\n  kubesetup install 1.27\n  kubesetup install v1.27.15",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var version string
			if len(args) == 1 {
				version = args[0]
			}
			_, err := c.app.Setup(cmd.Context(), version)
			return err
		},
	}
}
