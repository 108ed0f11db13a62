package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Status symbols shared by the wizard, prompts and dashboard.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolBullet  = "•"
	SymbolArrow   = "→"
	SymbolPointer = "›"
)

// Checkmark returns a success-colored check followed by text.
func Checkmark(text string) string {
	return SuccessStyle.Render(SymbolCheck) + " " + text
}

// FormatEmail renders email with an OSC 8 mailto hyperlink.
// Returns empty string for an empty address.
func FormatEmail(email string) string {
	if email == "" {
		return ""
	}
	styled := AccentStyle.Underline(true).Render(email)
	return ansi.SetHyperlink("mailto:"+email) + styled + ansi.ResetHyperlink()
}

// Truncate shortens s to width visible cells, ANSI sequences included,
// appending an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
