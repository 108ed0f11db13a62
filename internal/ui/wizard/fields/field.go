// Package fields provides the form inputs that onboarding pages are built
// from, and Form, which moves focus between them.
package fields

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/onboard/internal/ui/styles"
	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

// Field is a single labelled input on a page.
type Field interface {
	// Key identifies the field, usually the onboarding field name.
	Key() string
	Label() string

	Focus() tea.Cmd
	Blur()
	Focused() bool

	// Update handles a key press while the field is focused.
	Update(msg tea.KeyPressMsg) tea.Cmd
	View() string

	// Value returns the normalized value, or "" when nothing valid is entered.
	Value() string
	SetValue(v string)

	HasClearableInput() bool
	ClearInput() tea.Cmd
}

// VerticalKeys is implemented by fields that use up and down themselves.
// A Form does not move focus on those keys while such a field is focused.
type VerticalKeys interface {
	UsesVerticalKeys() bool
}

// renderLabel renders a field label, highlighted when focused.
func renderLabel(label string, focused bool) string {
	if focused {
		return framework.FocusedLabelStyle().Render(styles.SymbolPointer + " " + label)
	}
	return framework.LabelStyle().Render("  " + label)
}

// indent prefixes every line of s so it sits under the label text.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
