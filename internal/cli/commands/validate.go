package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soclib/notableparse/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <patterns-file>",
		Short: "Validate a pattern resource file",
		Long: `Validate a pattern resource file without parsing any events.

Checks:
  - YAML syntax
  - At least one event-type pattern present
  - Regex pattern validity
  - Presence of named capture groups`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	patternsPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", patternsPath)

	cfg, err := config.Load(ctx, patternsPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nPattern resource valid!\n")
	for _, event := range cfg.EventTypes() {
		groups := cfg.GroupNames(event)
		fmt.Printf("  %s: %d named group(s): %s\n", event, len(groups), strings.Join(groups, ", "))
	}

	return nil
}
