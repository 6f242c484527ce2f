package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/soclib/notableparse/pkg/table"
)

// JSONFormatter formats parsed frames as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the frame as a JSON array of row objects, or just the
// summary in quiet mode.
func (f *JSONFormatter) Format(ctx context.Context, frame *table.Frame, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(NewSummary(frame))
	}

	rows := make([]map[string]string, frame.Len())
	for i := range rows {
		rows[i] = frame.Row(i)
	}

	return encoder.Encode(rows)
}
