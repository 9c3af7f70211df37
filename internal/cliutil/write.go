// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Structured output encodings accepted by WriteStructured.
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteStructured encodes data as indented JSON or YAML and writes it to w
// followed by exactly one newline.
func WriteStructured(w io.Writer, data any, encoding string) error {
	var out []byte
	var err error

	switch encoding {
	case EncodingJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case EncodingYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", encoding)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", encoding, err)
	}

	Writef(w, "%s\n", strings.TrimRight(string(out), "\n"))
	return nil
}
