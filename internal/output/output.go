// Package output renders console API payloads for aarch64ctl.
package output

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format represents an output format type.
type Format string

const (
	// FormatJSON is indented JSON for machine consumption.
	FormatJSON Format = "json"
	// FormatYAML is YAML for human reading.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format string from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid formats: json, yaml)", s)
	}
}

// Render formats v for terminal output. Raw API payloads
// (json.RawMessage) are decoded first so they render as structured
// documents rather than byte strings.
func Render(v any, format Format) (string, error) {
	if raw, ok := v.(json.RawMessage); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return "", fmt.Errorf("failed to decode payload: %w", err)
		}
		v = decoded
	}

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return string(data), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid formats: json, yaml)", format)
	}
}
