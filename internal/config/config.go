// Package config loads lexid.toml and applies LEXID_* environment overrides.
//
// Precedence, lowest first: built-in defaults, lexid.toml, environment,
// command-line flags. Flags are applied by the CLI after Load returns.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"lexid/internal/diag"
	"lexid/internal/name"
	"lexid/internal/trace"
)

// FileName is the manifest name searched for by Find.
const FileName = "lexid.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LEXID_"

var (
	ErrInvalidColor  = errors.New("invalid color mode")
	ErrInvalidFormat = errors.New("invalid output format")
)

var (
	colorModes    = []string{"auto", "on", "off"}
	outputFormats = []string{"pretty", "short", "json", "msgpack"}
)

type Config struct {
	Check CheckConfig `toml:"check" envPrefix:"CHECK_"`
	Names NamesConfig `toml:"names" envPrefix:"NAMES_"`
	Trace TraceConfig `toml:"trace" envPrefix:"TRACE_"`
}

type CheckConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics" env:"MAX_DIAGNOSTICS"` // 0 - без ограничения
	Jobs           int    `toml:"jobs" env:"JOBS"`                       // 0 - GOMAXPROCS
	MaxTokenLen    int    `toml:"max_token_len" env:"MAX_TOKEN_LEN"`
	Color          string `toml:"color" env:"COLOR"`
	Format         string `toml:"format" env:"FORMAT"`
}

// NamesConfig lists valid names the project forbids. They still lex as
// names but are reported with Severity.
type NamesConfig struct {
	Reserved []string      `toml:"reserved" env:"RESERVED" envSeparator:","`
	Severity diag.Severity `toml:"severity" env:"SEVERITY"`
}

type TraceConfig struct {
	Level  trace.Level `toml:"level" env:"LEVEL"`
	Output string      `toml:"output" env:"OUTPUT"`
}

// Default returns the configuration used when no file or variable is set.
func Default() Config {
	return Config{
		Check: CheckConfig{
			MaxDiagnostics: 100,
			Color:          "auto",
			Format:         "pretty",
		},
		Names: NamesConfig{Severity: diag.SevWarning},
	}
}

// Validate checks value ranges and that every reserved entry is a valid name.
func (c Config) Validate() error {
	var errs []error
	if c.Check.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("check.max_diagnostics must be >= 0, got %d", c.Check.MaxDiagnostics))
	}
	if c.Check.Jobs < 0 {
		errs = append(errs, fmt.Errorf("check.jobs must be >= 0, got %d", c.Check.Jobs))
	}
	if c.Check.MaxTokenLen < 0 {
		errs = append(errs, fmt.Errorf("check.max_token_len must be >= 0, got %d", c.Check.MaxTokenLen))
	}
	if !slices.Contains(colorModes, c.Check.Color) {
		errs = append(errs, fmt.Errorf("%w %q (expected: %s)", ErrInvalidColor, c.Check.Color, strings.Join(colorModes, "|")))
	}
	if !slices.Contains(outputFormats, c.Check.Format) {
		errs = append(errs, fmt.Errorf("%w %q (expected: %s)", ErrInvalidFormat, c.Check.Format, strings.Join(outputFormats, "|")))
	}
	for i, r := range c.Names.Reserved {
		if _, err := name.Parse(r); err != nil {
			errs = append(errs, fmt.Errorf("names.reserved[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ReservedSet returns the reserved names as a lookup set.
func (c Config) ReservedSet() map[string]struct{} {
	if len(c.Names.Reserved) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Names.Reserved))
	for _, r := range c.Names.Reserved {
		set[r] = struct{}{}
	}
	return set
}
