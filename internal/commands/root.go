package commands

import (
	"github.com/simonhull/casual/output"
	"github.com/spf13/cobra"
)

// Version is the ask CLI version, overridable at build time with
// -ldflags "-X ...commands.Version=...".
var Version = "0.1.0"

// RootCmd creates and returns the root command for the ask CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Interactive typed prompts for shell scripts",
		Long: `ask collects answers from a user on the terminal and prints them
for consumption by shell scripts.

Prompts are written to stderr and answers to stdout, so results can be
captured without swallowing the prompt:

  name=$(ask prompt -m "Your name")
  port=$(ask prompt -m "Port" -t int -d 8080)
  ask confirm "Deploy to production?" && deploy`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
