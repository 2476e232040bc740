package config

import (
	"bytes"
	"errors"
	"os"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to os.Stderr")
	}
	if cfg.Variant != DefaultVariant {
		t.Errorf("Variant = %q, want %q", cfg.Variant, DefaultVariant)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigBuilder(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithLogFile(&buf).
		WithVariant("classical").
		Build()

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.LogFile != &buf {
		t.Error("LogFile not set by builder")
	}

	if q := NewConfigBuilder().Quiet().Build(); q.Verbosity != 0 {
		t.Errorf("Quiet().Verbosity = %d, want 0", q.Verbosity)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"negative verbosity", NewConfigBuilder().WithVerbosity(-1).Build()},
		{"empty variant", NewConfigBuilder().WithVariant("").Build()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(2, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Logf above verbosity wrote %q", buf.String())
	}

	cfg.Logf(1, "shown %d", 2)
	if got := buf.String(); got != "shown 2\n" {
		t.Errorf("Logf wrote %q, want %q", got, "shown 2\n")
	}

	var nilCfg *Config
	nilCfg.Logf(0, "no panic")
}
