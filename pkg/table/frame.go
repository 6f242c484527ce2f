// Package table provides a minimal in-memory tabular dataset of string columns.
package table

import (
	"fmt"
)

// Frame is an ordered collection of named string columns with a uniform
// row count. Values are plain strings; there is no null representation,
// so "absent" is always the empty string.
type Frame struct {
	names []string
	cols  map[string][]string
	rows  int
}

// New creates an empty Frame. The row count is fixed by the first column added.
func New() *Frame {
	return &Frame{
		cols: make(map[string][]string),
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Column returns the values of the named column and whether it exists.
// The returned slice is the frame's backing storage; callers that need
// to mutate it independently should copy it first.
func (f *Frame) Column(name string) ([]string, bool) {
	col, ok := f.cols[name]
	return col, ok
}

// SetColumn adds a new column or replaces an existing one. A replaced
// column keeps its position; a new column is appended after existing ones.
// Returns an error if the value count does not match the frame's row count.
func (f *Frame) SetColumn(name string, values []string) error {
	if len(f.names) > 0 && len(values) != f.rows {
		return fmt.Errorf("column %q has %d values, frame has %d rows", name, len(values), f.rows)
	}

	if _, exists := f.cols[name]; !exists {
		f.names = append(f.names, name)
		if len(f.names) == 1 {
			f.rows = len(values)
		}
	}
	f.cols[name] = values

	return nil
}

// Drop removes the named columns. Unknown names are ignored.
func (f *Frame) Drop(names ...string) {
	for _, name := range names {
		if _, ok := f.cols[name]; !ok {
			continue
		}
		delete(f.cols, name)
		for i, n := range f.names {
			if n == name {
				f.names = append(f.names[:i], f.names[i+1:]...)
				break
			}
		}
	}
	if len(f.names) == 0 {
		f.rows = 0
	}
}

// Row returns the values of row i as a column-name-to-value map.
func (f *Frame) Row(i int) map[string]string {
	row := make(map[string]string, len(f.names))
	for _, name := range f.names {
		row[name] = f.cols[name][i]
	}
	return row
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := New()
	for _, name := range f.names {
		values := make([]string, len(f.cols[name]))
		copy(values, f.cols[name])
		// Length always matches: we copy column by column from a valid frame.
		_ = out.SetColumn(name, values)
	}
	return out
}
