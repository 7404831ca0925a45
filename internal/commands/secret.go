package commands

import (
	"fmt"

	"github.com/simonhull/casual/input"
	"github.com/spf13/cobra"
)

// SecretCmd creates and returns the 'secret' command
func SecretCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Ask for a value without echoing it",
		Long: `Prompts for a sensitive value. When stdin is a terminal the input
is not echoed back.

Example:
  token=$(ask secret -m "API token")`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := input.Secret(message + ": ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "Secret", "Prompt text shown to the user")

	return cmd
}
