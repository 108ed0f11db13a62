// Package styles provides shared lipgloss styles for UI components.
//
// Colors come from the active Theme (see Init). Package-level style
// variables are rebuilt whenever the theme changes, so components should
// read them at render time rather than caching them.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette colors, replaced by Init.
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Success color.Color = DefaultTheme.Success
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Info    color.Color = DefaultTheme.Info
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	Bold   = lipgloss.NewStyle().Bold(true)
	Italic = lipgloss.NewStyle().Italic(true)

	PrimaryStyle lipgloss.Style
	AccentStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	NormalStyle  lipgloss.Style
	InfoStyle    lipgloss.Style
	WarningStyle lipgloss.Style

	// CardStyle frames dashboard and welcome cards.
	CardStyle lipgloss.Style

	// HeadingStyle for section headings inside pages and cards.
	HeadingStyle lipgloss.Style
)

func init() {
	applyTheme(DefaultTheme)
}
