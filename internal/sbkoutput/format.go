// Package sbkoutput provides the CLI's text/JSON/QR output surface,
// adapted from Sigil's internal/output package.
package sbkoutput

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format is the CLI's output rendering mode.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHex  Format = "hex"
	FormatAuto Format = "auto"
)

// Formatter renders a value as either text or JSON.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a Formatter writing to w in format.
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{format: format, writer: w}
}

// IsJSON reports whether this formatter emits JSON.
func (f *Formatter) IsJSON() bool { return f.format == FormatJSON }

// Print writes v, as JSON if the formatter is in JSON mode, else as
// text via fmt.Stringer or a plain %v.
func (f *Formatter) Print(v any) error {
	if f.format == FormatJSON {
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	switch val := v.(type) {
	case string:
		_, err := fmt.Fprintln(f.writer, val)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.writer, val.String())
		return err
	default:
		_, err := fmt.Fprintf(f.writer, "%v\n", val)
		return err
	}
}

// DetectFormat resolves FormatAuto against whether w is a terminal:
// text for a TTY, JSON otherwise (e.g. piped into another tool).
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto {
		return explicit
	}
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
			return FormatText
		}
	}
	return FormatJSON
}

// ParseFormat parses a format string from a flag or config value.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	case "hex":
		return FormatHex
	default:
		return FormatAuto
	}
}
