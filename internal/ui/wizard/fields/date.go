package fields

import (
	"strings"
	"time"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

var layoutPlaceholder = strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD")

// widestDate needs every layout element at its full width.
var widestDate = time.Date(2000, time.December, 28, 0, 0, 0, 0, time.UTC)

// runeFilterDate allows digits and common date separators.
func runeFilterDate(r rune) bool {
	return unicode.IsDigit(r) || strings.ContainsRune("-/.", r)
}

// DateField is a text input that parses a calendar date in a fixed layout.
// An empty or unparseable input has no value.
type DateField struct {
	key    string
	label  string
	layout string
	input  textinput.Model
}

// NewDate creates a date field that accepts input in layout. An empty
// layout means onboarding.DateLayout.
func NewDate(key, label, layout string) *DateField {
	if layout == "" {
		layout = onboarding.DateLayout
	}
	input := newInput(layoutPlaceholder.Replace(layout))
	input.CharLimit = len(widestDate.Format(layout))
	return &DateField{
		key:    key,
		label:  label,
		layout: layout,
		input:  input,
	}
}

func (f *DateField) Key() string   { return f.key }
func (f *DateField) Label() string { return f.label }

func (f *DateField) Focus() tea.Cmd {
	f.input.Focus()
	return textinput.Blink
}

func (f *DateField) Blur()         { f.input.Blur() }
func (f *DateField) Focused() bool { return f.input.Focused() }

func (f *DateField) Update(msg tea.KeyPressMsg) tea.Cmd {
	return updateInput(&f.input, msg, runeFilterDate)
}

// Date returns the parsed date and whether the input holds one.
func (f *DateField) Date() (time.Time, bool) {
	raw := strings.TrimSpace(f.input.Value())
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(f.layout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Value returns the date in onboarding.DateLayout, or "" when unset.
func (f *DateField) Value() string {
	t, ok := f.Date()
	if !ok {
		return ""
	}
	return t.Format(onboarding.DateLayout)
}

// SetValue accepts a date in onboarding.DateLayout and shows it in the
// field's own layout. Other input is shown as is.
func (f *DateField) SetValue(v string) {
	if t, err := time.Parse(onboarding.DateLayout, v); err == nil {
		v = t.Format(f.layout)
	}
	f.input.SetValue(v)
	f.input.CursorEnd()
}

// invalid reports a complete-looking input that does not parse.
func (f *DateField) invalid() bool {
	raw := strings.TrimSpace(f.input.Value())
	if len(raw) < len(f.layout) {
		return false
	}
	_, ok := f.Date()
	return !ok
}

func (f *DateField) View() string {
	var b strings.Builder
	b.WriteString(renderLabel(f.label, f.Focused()))
	b.WriteString("\n")
	b.WriteString(indent(f.input.View()))
	if f.invalid() {
		b.WriteString("\n")
		b.WriteString(indent(framework.ErrorStyle().Render(
			"Not a valid date, use " + layoutPlaceholder.Replace(f.layout))))
	}
	return b.String()
}

func (f *DateField) HasClearableInput() bool {
	return f.input.Value() != ""
}

func (f *DateField) ClearInput() tea.Cmd {
	f.input.SetValue("")
	return nil
}
