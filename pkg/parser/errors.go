package parser

import "fmt"

// ConfigError indicates the pattern resource could not be loaded, or the
// requested event type has no usable pattern. Fatal to the call; there is
// no retry and no partial result.
type ConfigError struct {
	EventType string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.EventType != "" {
		return fmt.Sprintf("pattern configuration for event type %q: %v", e.EventType, e.Err)
	}
	return fmt.Sprintf("pattern configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SchemaError indicates a required input column is absent from the frame.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input column %q not found", e.Column)
}
