// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// OutputFormat selects how pick-level renders results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates s. An empty string selects FormatText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, FormatJSON:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unsupported format %q: use text, yaml, or json", s)
}

// PickConfig holds the settings read from the config file, environment and flags.
type PickConfig struct {
	// Format is the default output format (default text).
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// LogLevel is the minimum level written to stderr: debug, info, warn, or error (default warn).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
