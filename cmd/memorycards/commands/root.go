// Package commands implements the memorycards command line.
package commands

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=..."
var Version = "dev"

// Execute runs the root command with the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "memorycards",
		Short:         "Memory card matching game server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default ./config.yaml when present)")

	root.AddCommand(
		serveCmd(&configPath),
		levelsCmd(),
		versionCmd(),
	)
	return root
}
