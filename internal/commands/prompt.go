package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// PromptCmd creates and returns the 'prompt' command
func PromptCmd() *cobra.Command {
	var (
		message string
		def     string
		typ     string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a single typed value",
		Long: `Prompts for one value, re-asking until the answer parses as the
requested type, and prints it to stdout.

Example:
  port=$(ask prompt -m "Port" -t int -d 8080)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := askValue(os.Stdin, os.Stderr, typ, message, def)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Prompt text shown to the user")
	cmd.Flags().StringVarP(&def, "default", "d", "", "Value used when the user just presses Enter")
	cmd.Flags().StringVarP(&typ, "type", "t", "string", "Answer type: string, int, float, bool, or duration")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
