package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/simonhull/casual/menu"
	"github.com/spf13/cobra"
)

// ChooseCmd creates and returns the 'choose' command
func ChooseCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "choose [option]...",
		Short: "Pick one option from an interactive list",
		Long: `Shows a keyboard-navigable menu of the given options and prints
the chosen one to stdout. Cancelling exits with status 1.

Example:
  env=$(ask choose --title "Environment" staging production)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, choice, err := menu.Select(title, args)
			if errors.Is(err, menu.ErrCancelled) {
				os.Exit(1)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), choice)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Heading shown above the options")

	return cmd
}
