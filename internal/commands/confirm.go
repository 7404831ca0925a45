package commands

import (
	"os"

	"github.com/simonhull/casual/input"
	"github.com/simonhull/casual/output"
	"github.com/spf13/cobra"
)

// ConfirmCmd creates and returns the 'confirm' command
func ConfirmCmd() *cobra.Command {
	var defaultYes bool

	cmd := &cobra.Command{
		Use:   "confirm [message]",
		Short: "Ask a yes/no question",
		Long: `Asks a yes/no question and reports the answer through the exit
status: 0 for yes, 1 for no.

Example:
  ask confirm "Deploy to production?" && deploy`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			output.Verbose("asking for confirmation")

			if !input.ConfirmDefault(args[0], defaultYes) {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&defaultYes, "default-yes", false, "Treat an empty answer as yes instead of no")

	return cmd
}
