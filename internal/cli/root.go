// Package cli holds the desk command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "desk",
	Short:         "Help desk work orders",
	Long:          `Work-order engine for field and lab technicians: HTTP API and a polling board.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
