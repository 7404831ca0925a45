package main

import (
	"os"

	"github.com/simonhull/casual/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.PromptCmd())
	rootCmd.AddCommand(commands.ConfirmCmd())
	rootCmd.AddCommand(commands.SecretCmd())
	rootCmd.AddCommand(commands.ChooseCmd())
	rootCmd.AddCommand(commands.FormCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
