package output

import (
	"context"
	"fmt"
	"io"

	"github.com/soclib/notableparse/pkg/table"
)

// TextFormatter formats parsed frames as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the frame as text.
func (f *TextFormatter) Format(ctx context.Context, frame *table.Frame, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(frame, w)
	}
	return f.formatFull(frame, w)
}

func (f *TextFormatter) formatQuiet(frame *table.Frame, w io.Writer) error {
	summary := NewSummary(frame)
	_, err := fmt.Fprintf(w, "%d row(s), %d column(s)\n", summary.Rows, summary.Columns)
	return err
}

func (f *TextFormatter) formatFull(frame *table.Frame, w io.Writer) error {
	columns := frame.Columns()

	for i := 0; i < frame.Len(); i++ {
		fmt.Fprintf(w, "--- row %d ---\n", i)
		row := frame.Row(i)
		for _, name := range columns {
			fmt.Fprintf(w, "  %s: %s\n", name, row[name])
		}
	}

	summary := NewSummary(frame)
	_, err := fmt.Fprintf(w, "%d row(s), %d column(s)\n", summary.Rows, summary.Columns)
	return err
}
