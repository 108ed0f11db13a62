package fields

import (
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/onboard/internal/ui/styles"
	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

// FileField takes the path of a file to upload. Only the path is recorded;
// the file is never opened.
type FileField struct {
	key   string
	label string
	hint  string
	input textinput.Model
}

// NewFile creates a file field. hint is advisory text such as accepted
// formats and is not enforced.
func NewFile(key, label, hint string) *FileField {
	input := newInput("path/to/file")
	input.CharLimit = 4096
	return &FileField{
		key:   key,
		label: label,
		hint:  hint,
		input: input,
	}
}

func (f *FileField) Key() string   { return f.key }
func (f *FileField) Label() string { return f.label }

func (f *FileField) Focus() tea.Cmd {
	f.input.Focus()
	return textinput.Blink
}

func (f *FileField) Blur()         { f.input.Blur() }
func (f *FileField) Focused() bool { return f.input.Focused() }

func (f *FileField) Update(msg tea.KeyPressMsg) tea.Cmd {
	return updateInput(&f.input, msg, framework.RuneFilterNone)
}

// Value returns the entered path.
func (f *FileField) Value() string {
	return strings.TrimSpace(f.input.Value())
}

func (f *FileField) SetValue(v string) {
	f.input.SetValue(v)
	f.input.CursorEnd()
}

// FileName returns the base name of the entered path.
func (f *FileField) FileName() string {
	v := f.Value()
	if v == "" {
		return ""
	}
	return filepath.Base(v)
}

func (f *FileField) View() string {
	var b strings.Builder
	b.WriteString(renderLabel(f.label, f.Focused()))
	b.WriteString("\n")
	b.WriteString(indent(f.input.View()))
	b.WriteString("\n")
	if name := f.FileName(); name != "" {
		b.WriteString(indent(styles.Checkmark(name)))
	} else {
		b.WriteString(indent(framework.HintStyle().Render(f.hint)))
	}
	return b.String()
}

func (f *FileField) HasClearableInput() bool {
	return f.input.Value() != ""
}

func (f *FileField) ClearInput() tea.Cmd {
	f.input.SetValue("")
	return nil
}
