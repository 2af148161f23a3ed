package tui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode selects how a screen is presented.
type OutputMode string

const (
	// OutputAuto picks OutputInteractive on a terminal and OutputTable otherwise.
	OutputAuto OutputMode = "auto"
	// OutputInteractive runs the Bubble Tea program.
	OutputInteractive OutputMode = "interactive"
	// OutputTable prints one snapshot as a table.
	OutputTable OutputMode = "table"
	// OutputJSON prints one snapshot as JSON.
	OutputJSON OutputMode = "json"
)

// ParseOutputMode validates a --output flag value.
func ParseOutputMode(s string) (OutputMode, error) {
	switch mode := OutputMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return OutputAuto, nil
	case OutputAuto, OutputInteractive, OutputTable, OutputJSON:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid output mode %q (valid: auto, interactive, table, json)", s)
	}
}

// ResolveOutputMode turns OutputAuto into a concrete mode for out.
func ResolveOutputMode(mode OutputMode, out *os.File) OutputMode {
	if mode != OutputAuto {
		return mode
	}
	if out != nil && IsTerminal(out) {
		return OutputInteractive
	}
	return OutputTable
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}

// TerminalWidth returns the width of f, or defaultWidth when it is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil || !IsTerminal(f) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
