// Package commands implements the convcalc command line: the web server and
// offline access to the conversion registry.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "convcalc",
		Short:        "Unit converter website and command line",
		SilenceUsage: true,
	}
	root.AddCommand(
		serveCmd(),
		convertCmd(),
		listCmd(),
		searchCmd(),
		categoriesCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the convcalc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "convcalc %s\n", version)
		},
	}
}
