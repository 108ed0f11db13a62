package fields

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

const (
	defaultCharLimit = 156
	defaultWidth     = 40
)

// TextField is a single-line free text input.
type TextField struct {
	key    string
	label  string
	hint   string
	input  textinput.Model
	filter framework.RuneFilter
}

// NewText creates a text field. The input uses a blinking bar cursor.
func NewText(key, label, placeholder string) *TextField {
	return &TextField{
		key:   key,
		label: label,
		input: newInput(placeholder),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = defaultCharLimit
	ti.SetWidth(defaultWidth)

	styles := ti.Styles()
	styles.Cursor.Shape = tea.CursorBar
	styles.Cursor.Blink = true
	ti.SetStyles(styles)
	return ti
}

// WithRuneFilter restricts which characters can be typed.
func (f *TextField) WithRuneFilter(filter framework.RuneFilter) *TextField {
	f.filter = filter
	return f
}

// WithHint sets an advisory line shown under the input.
func (f *TextField) WithHint(hint string) *TextField {
	f.hint = hint
	return f
}

// WithCharLimit sets the maximum input length.
func (f *TextField) WithCharLimit(limit int) *TextField {
	f.input.CharLimit = limit
	return f
}

func (f *TextField) Key() string   { return f.key }
func (f *TextField) Label() string { return f.label }

func (f *TextField) Focus() tea.Cmd {
	f.input.Focus()
	return textinput.Blink
}

func (f *TextField) Blur()         { f.input.Blur() }
func (f *TextField) Focused() bool { return f.input.Focused() }

func (f *TextField) Update(msg tea.KeyPressMsg) tea.Cmd {
	return updateInput(&f.input, msg, f.filter)
}

// updateInput forwards msg to the input, dropping typed characters the
// filter rejects.
func updateInput(input *textinput.Model, msg tea.KeyPressMsg, filter framework.RuneFilter) tea.Cmd {
	if msg.Text != "" {
		text := framework.FilterRunes([]rune(msg.Text), filter)
		if text == "" {
			return nil
		}
		msg.Text = text
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return cmd
}

func (f *TextField) View() string {
	var b strings.Builder
	b.WriteString(renderLabel(f.label, f.Focused()))
	b.WriteString("\n")
	b.WriteString(indent(f.input.View()))
	if f.hint != "" {
		b.WriteString("\n")
		b.WriteString(indent(framework.HintStyle().Render(f.hint)))
	}
	return b.String()
}

// Value returns the input with surrounding whitespace removed.
func (f *TextField) Value() string {
	return strings.TrimSpace(f.input.Value())
}

func (f *TextField) SetValue(v string) {
	f.input.SetValue(v)
	f.input.CursorEnd()
}

func (f *TextField) HasClearableInput() bool {
	return f.input.Value() != ""
}

func (f *TextField) ClearInput() tea.Cmd {
	f.input.SetValue("")
	return nil
}
