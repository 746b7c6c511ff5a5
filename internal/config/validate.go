package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tessro/tripid/internal/emit"
)

// Validation errors.
var (
	ErrInvalidLogLevel = errors.New("log_level must be 'debug', 'info', 'warn', or 'error'")
	ErrInvalidFormat   = errors.New("format must be 'text', 'json', or 'yaml'")
	ErrInvalidCount    = errors.New("count out of range")
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidationError wraps a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateLogLevel validates a log level name. Empty selects the default.
func ValidateLogLevel(level string) error {
	if level == "" || validLogLevels[strings.ToLower(level)] {
		return nil
	}
	return &ValidationError{
		Field:   "log_level",
		Value:   level,
		Message: "must be debug, info, warn, or error",
		Err:     ErrInvalidLogLevel,
	}
}

// ValidateFormat validates an output format name. Empty selects text.
func ValidateFormat(format string) error {
	if _, err := emit.ParseFormat(format); err != nil {
		return &ValidationError{
			Field:   "output.format",
			Value:   format,
			Message: "must be text, json, or yaml",
			Err:     ErrInvalidFormat,
		}
	}
	return nil
}

// ValidateCount validates the number of IDs to generate. Zero selects the default.
func ValidateCount(count int) error {
	if count == 0 || (count >= 1 && count <= emit.MaxCount) {
		return nil
	}
	return &ValidationError{
		Field:   "output.count",
		Value:   fmt.Sprintf("%d", count),
		Message: fmt.Sprintf("must be between 1 and %d", emit.MaxCount),
		Err:     ErrInvalidCount,
	}
}

// Validate checks every field of c. A nil config is valid.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}

	if err := ValidateFormat(c.Output.Format); err != nil {
		return err
	}

	if err := ValidateCount(c.Output.Count); err != nil {
		return err
	}

	return nil
}
