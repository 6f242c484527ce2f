// Package cli provides the command-line interface for notableparse.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soclib/notableparse/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notableparse",
		Short: "Extract structured fields from Splunk notable events",
		Long: `notableparse extracts structured fields from raw Splunk "notable"
event lines using named-capture regular expressions.

Each input line yields exactly one output record with one field per named
capture group. Empty src_ip/dest_ip fields are filled from their alternate
captures (src_ip2/dest_ip2) before output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
