// Package output provides formatting of parsed event frames.
package output

import (
	"context"
	"io"

	"github.com/soclib/notableparse/pkg/table"
)

// Formatter renders a parsed frame in a specific format.
type Formatter interface {
	// Format renders the frame to the given writer.
	Format(ctx context.Context, f *table.Frame, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Quiet enables minimal summary-only output.
	Quiet bool
}

// Summary provides aggregate statistics about a parsed frame.
type Summary struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// NewSummary builds a Summary from a frame.
func NewSummary(f *table.Frame) Summary {
	return Summary{
		Rows:    f.Len(),
		Columns: len(f.Columns()),
	}
}
