package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputFormat is the rendering format for resolution reports.
type OutputFormat string

const (
	// FormatAuto picks text on a terminal and JSON otherwise.
	FormatAuto OutputFormat = "auto"
	// FormatText renders styled text.
	FormatText OutputFormat = "text"
	// FormatJSON renders JSON documents.
	FormatJSON OutputFormat = "json"
	// FormatHTML renders the script tags a page would contain.
	FormatHTML OutputFormat = "html"
)

// DetectEnvironment returns the format suited to stdout: text for an interactive
// terminal, JSON when piped or running in CI.
func DetectEnvironment() OutputFormat {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatText
}

// ResolveFormat applies a user override to the auto-detected format.
// Unknown values fall back to the auto-detected format.
func ResolveFormat(autoDetected OutputFormat, userFlag string) OutputFormat {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(userFlag))) {
	case FormatText:
		return FormatText
	case FormatJSON:
		return FormatJSON
	case FormatHTML:
		return FormatHTML
	default:
		return autoDetected
	}
}
