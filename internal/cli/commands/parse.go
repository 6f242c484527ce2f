package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/soclib/notableparse/pkg/config"
	"github.com/soclib/notableparse/pkg/output"
	"github.com/soclib/notableparse/pkg/parser"
	"github.com/soclib/notableparse/pkg/table"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Output    string
	RawColumn string
	Patterns  string
	EventType string
	Quiet     bool
	RecordID  bool
	Verbose   bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <events-file>",
		Short: "Parse raw notable event lines into structured fields",
		Long: `Parse a file of raw event lines (one event per line) into structured
fields using the configured named-capture pattern.

Lines that do not match the pattern are kept, with every capture field
empty. Output always has one record per input line.

Exit codes:
  0 - Parsed successfully
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.RawColumn, "raw-column", "raw", "Name of the raw text column")
	cmd.Flags().StringVar(&opts.Patterns, "patterns", "", "Pattern resource file (default: embedded resource)")
	cmd.Flags().StringVar(&opts.EventType, "event-type", config.EventTypeNotable, "Event type to extract")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no records")
	cmd.Flags().BoolVar(&opts.RecordID, "record-id", false, "Attach a generated record_id to each record")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging to stderr")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	eventsPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newLogger(opts.Verbose)

	// Read raw event lines
	lines, err := readLines(eventsPath)
	if err != nil {
		return fmt.Errorf("reading events: %w", err)
	}

	frame := table.New()
	if err := frame.SetColumn(opts.RawColumn, lines); err != nil {
		return err
	}

	// Create parser
	parserOpts := []parser.Option{
		parser.WithEventType(opts.EventType),
		parser.WithLogger(logger),
	}
	if opts.RecordID {
		parserOpts = append(parserOpts, parser.WithRecordID())
	}

	var p *parser.Parser
	if opts.Patterns != "" {
		p, err = parser.NewFromResource(ctx, opts.Patterns, parserOpts...)
	} else {
		p, err = parser.New(parserOpts...)
	}
	if err != nil {
		return fmt.Errorf("creating parser: %w", err)
	}

	parsed, err := p.Parse(frame, opts.RawColumn)
	if err != nil {
		return fmt.Errorf("parsing events: %w", err)
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, parsed, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func createFormatter(opts *ParseOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Quiet: opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// newLogger builds the diagnostic logger. Debug level only with --verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// readLines reads one raw event per line.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}
