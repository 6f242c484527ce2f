// Package parser extracts structured fields from raw Splunk notable event
// lines using a named-capture pattern, with src_ip/dest_ip fallback
// normalization.
package parser

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/soclib/notableparse/pkg/config"
	"github.com/soclib/notableparse/pkg/table"
)

// RecordIDColumn is the column added when record IDs are enabled.
const RecordIDColumn = "record_id"

// Parser applies one event type's named-capture pattern to a frame of raw
// event lines. The compiled pattern is immutable after construction, so a
// single Parser is safe for concurrent use across frames.
type Parser struct {
	eventType string
	pattern   *regexp.Regexp
	groups    []string
	recordID  bool
	logger    *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithEventType selects which configured pattern to use.
// Defaults to the notable event type.
func WithEventType(name string) Option {
	return func(p *Parser) {
		p.eventType = name
	}
}

// WithRecordID adds a record_id column of generated UUIDs to parsed output.
func WithRecordID() Option {
	return func(p *Parser) {
		p.recordID = true
	}
}

// WithLogger sets the logger used for diagnostic output.
// Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a Parser from the embedded pattern resource.
func New(opts ...Option) (*Parser, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return NewFromConfig(cfg, opts...)
}

// NewFromResource creates a Parser from a pattern resource file.
func NewFromResource(ctx context.Context, path string, opts ...Option) (*Parser, error) {
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig creates a Parser from an already-loaded pattern resource.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Parser, error) {
	p := &Parser{
		eventType: config.EventTypeNotable,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	pattern, ok := cfg.Pattern(p.eventType)
	if !ok {
		return nil, &ConfigError{EventType: p.eventType, Err: errors.New("no pattern configured")}
	}
	p.pattern = pattern
	p.groups = cfg.GroupNames(p.eventType)

	return p, nil
}

// EventType returns the event type this parser extracts.
func (p *Parser) EventType() string {
	return p.eventType
}

// Groups returns the pattern's named capture groups in pattern order.
func (p *Parser) Groups() []string {
	out := make([]string, len(p.groups))
	copy(out, p.groups)
	return out
}

// Parse applies the pattern row-wise to the named raw text column,
// producing one output column per named capture group. The input frame is
// not modified. Output row count and row order equal the input's. Rows
// that do not match yield empty strings for every capture column; a
// non-matching row is not an error. After extraction the src_ip/dest_ip
// fallback merge runs and the alternate columns are dropped.
func (p *Parser) Parse(f *table.Frame, rawColumn string) (*table.Frame, error) {
	raw, ok := f.Column(rawColumn)
	if !ok {
		return nil, &SchemaError{Column: rawColumn}
	}

	out := f.Clone()

	// Clean escaping artifacts on the working copy only.
	cleaned := make([]string, len(raw))
	for i, line := range raw {
		cleaned[i] = cleanRawText(line)
	}
	if err := out.SetColumn(rawColumn, cleaned); err != nil {
		return nil, err
	}

	captures := make(map[string][]string, len(p.groups))
	for _, group := range p.groups {
		captures[group] = make([]string, len(raw))
	}

	names := p.pattern.SubexpNames()
	matched := 0
	for i, line := range cleaned {
		m := p.pattern.FindStringSubmatch(line)
		if m == nil {
			// Non-matching row: every capture stays empty.
			continue
		}
		matched++
		for gi, name := range names {
			if name == "" || gi >= len(m) {
				continue
			}
			captures[name][i] = m[gi]
		}
	}

	for _, group := range p.groups {
		if err := out.SetColumn(group, captures[group]); err != nil {
			return nil, err
		}
	}

	p.logger.Debug("extracted event fields",
		"event_type", p.eventType,
		"rows", out.Len(),
		"matched", matched,
		"groups", len(p.groups))

	for _, pair := range fallbackPairs {
		mergeFallback(out, pair.primary, pair.alternate, p.logger)
	}

	if p.recordID {
		ids := make([]string, out.Len())
		for i := range ids {
			ids[i] = uuid.NewString()
		}
		if err := out.SetColumn(RecordIDColumn, ids); err != nil {
			return nil, err
		}
	}

	return out, nil
}
