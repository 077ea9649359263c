// Package style holds the colors and icons shared by the logger and progress output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Link    = "~"
	Dot     = "●"
	Circle  = "○"
)

// Outcome returns the icon and color an entry outcome is shown with.
func Outcome(o domain.Outcome) (string, lipgloss.Color) {
	switch o {
	case domain.OutcomeLoaded:
		return Check, Green
	case domain.OutcomeLinked:
		return Link, Green
	case domain.OutcomeGrouped:
		return Dot, Iris
	case domain.OutcomeMissing:
		return Warning, Yellow
	case domain.OutcomeFailed:
		return Cross, Red
	default:
		return Circle, Slate
	}
}
