package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders through lipgloss with the detected colour profile
	FormatTerminal
	// FormatANSI emits raw SGR sequences, resetting after every styled run
	FormatANSI
	// FormatPalette maps colours onto the 16 standard terminal colours
	FormatPalette
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
)

// Formats lists every concrete format, in the order shown to users.
var Formats = []Format{FormatAuto, FormatTerminal, FormatANSI, FormatPalette, FormatText, FormatJSON}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatANSI:
		return "ansi"
	case FormatPalette:
		return "palette"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "ansi", "raw":
		return FormatANSI, nil
	case "palette", "16":
		return FormatPalette, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrUnknownFormat, "unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	switch termenv.ColorProfile() {
	case termenv.Ascii:
		return FormatText
	case termenv.ANSI:
		return FormatPalette
	default:
		return FormatTerminal
	}
}

// ParseProfile parses a colour profile name. "auto" and the empty string
// return ok=false, meaning the profile should be detected.
func ParseProfile(s string) (p termenv.Profile, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return termenv.Ascii, false, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, true, nil
	case "ansi256", "256":
		return termenv.ANSI256, true, nil
	case "ansi":
		return termenv.ANSI, true, nil
	case "ascii", "none":
		return termenv.Ascii, true, nil
	default:
		return termenv.Ascii, false, errors.Newf(errors.ErrInvalidInput, "unknown color profile: %s", s)
	}
}
