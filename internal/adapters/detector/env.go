// Package detector provides environment detection for progress output selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how progress is rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeLinear prints a throttled line per progress update.
	ModeLinear
	// ModeCI prints only milestones and missing files.
	ModeCI
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeCI:
		return "ci"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// Progress goes to stderr, so that is the stream checked for a terminal.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

// Detect picks the mode for a stream that is or is not a terminal, given the
// value of the CI variable.
func Detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeCI
	}
	return ModeLinear
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "linear":
		return ModeLinear
	case "ci":
		return ModeCI
	default:
		return autoDetected
	}
}
