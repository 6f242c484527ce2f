// Package config provides loading and validation of the named-capture
// pattern resource used for event field extraction.
package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EventTypeNotable is the event type this module ships a pattern for.
const EventTypeNotable = "notable"

//go:embed resources/splunk_notable_regex.yaml
var defaultResource []byte

// Config is the pattern resource: a mapping from event-type label to a
// regular expression with named capture groups. Patterns are compiled
// once during validation and are immutable afterwards.
type Config struct {
	Patterns map[string]string `yaml:",inline" validate:"required,min=1,dive,required"`

	// compiled patterns (populated during validation)
	compiled map[string]*regexp.Regexp
}

// LoadDefault loads the pattern resource embedded in the binary.
func LoadDefault() (*Config, error) {
	cfg, err := parseResource(defaultResource)
	if err != nil {
		return nil, fmt.Errorf("embedded pattern resource: %w", err)
	}
	return cfg, nil
}

// Load reads and validates a pattern resource file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided resource path is expected
	if err != nil {
		return nil, fmt.Errorf("reading pattern resource: %w", err)
	}

	cfg, err := parseResource(data)
	if err != nil {
		return nil, fmt.Errorf("pattern resource %s: %w", path, err)
	}

	return cfg, nil
}

func parseResource(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}

	return cfg, nil
}

// Validate checks a pattern resource for errors and compiles its patterns.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("at least one non-empty pattern is required: %w", err)
	}

	cfg.compiled = make(map[string]*regexp.Regexp, len(cfg.Patterns))
	for event, pattern := range cfg.Patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("pattern %q: invalid regex: %w", event, err)
		}

		if countNamedGroups(re) == 0 {
			return fmt.Errorf("pattern %q: %w", event, errors.New("must contain at least one named capture group"))
		}

		cfg.compiled[event] = re
	}

	return nil
}

// Pattern returns the compiled pattern for an event type.
func (c *Config) Pattern(eventType string) (*regexp.Regexp, bool) {
	re, ok := c.compiled[eventType]
	return re, ok
}

// EventTypes returns the configured event-type labels, sorted.
func (c *Config) EventTypes() []string {
	types := make([]string, 0, len(c.Patterns))
	for event := range c.Patterns {
		types = append(types, event)
	}
	sort.Strings(types)
	return types
}

// GroupNames returns the named capture groups of an event type's pattern
// in pattern order. Returns nil for an unknown event type.
func (c *Config) GroupNames(eventType string) []string {
	re, ok := c.compiled[eventType]
	if !ok {
		return nil
	}

	var names []string
	for _, name := range re.SubexpNames() {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func countNamedGroups(re *regexp.Regexp) int {
	n := 0
	for _, name := range re.SubexpNames() {
		if name != "" {
			n++
		}
	}
	return n
}
