package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "perft, bench, and eval-trace tooling for the chess engine core",
}

// Execute runs the root command, returning any error for main to translate
// into a process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(perftCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(epdCmd)
}
