// Package config provides configuration for the rules engine.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultVariant names the variant boards use unless told otherwise.
const DefaultVariant = "classical"

// Config holds engine configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	// (one line per rejected move and per undo).
	Verbosity int

	// LogFile receives commentary output.
	LogFile io.Writer

	// Variant names the rule set new boards are built with.
	Variant string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		LogFile:   os.Stderr,
		Variant:   DefaultVariant,
	}
}

// Validate reports configuration values the engine cannot work with.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("negative verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Variant == "" {
		return fmt.Errorf("empty variant name: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a commentary line when verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
