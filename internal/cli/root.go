// Package cli provides the command-line interface for logscan.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logscan/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
// Every scan outcome exits 0; only invalid flags produce a non-zero code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewScanCommand()
	rootCmd.Version = commands.Version
	rootCmd.SetVersionTemplate(commands.VersionTemplate)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd
}
