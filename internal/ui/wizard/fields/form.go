package fields

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Form is an ordered group of fields with one focused at a time.
// tab and shift+tab always move focus; up and down move focus unless the
// focused field uses them itself.
type Form struct {
	fields   []Field
	focus    int
	onChange func(Field)
}

// NewForm creates a form over fields. The first field gets focus on Init.
func NewForm(fields ...Field) *Form {
	return &Form{fields: fields}
}

// OnChange registers fn to be called after an edit changes a field's value.
func (f *Form) OnChange(fn func(Field)) *Form {
	f.onChange = fn
	return f
}

// Init focuses the current field.
func (f *Form) Init() tea.Cmd {
	return f.FocusIndex(f.focus)
}

// Fields returns the form's fields in order.
func (f *Form) Fields() []Field {
	return f.fields
}

// Field returns the field with key, or nil.
func (f *Form) Field(key string) Field {
	for _, fld := range f.fields {
		if fld.Key() == key {
			return fld
		}
	}
	return nil
}

// Focused returns the focused field, or nil for an empty form.
func (f *Form) Focused() Field {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	return f.fields[f.focus]
}

// FocusedIndex returns the position of the focused field.
func (f *Form) FocusedIndex() int {
	return f.focus
}

// FocusIndex moves focus to the field at i.
func (f *Form) FocusIndex(i int) tea.Cmd {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	if cur := f.Focused(); cur != nil {
		cur.Blur()
	}
	f.focus = i
	return f.fields[i].Focus()
}

// FocusKey moves focus to the field with key.
func (f *Form) FocusKey(key string) tea.Cmd {
	for i, fld := range f.fields {
		if fld.Key() == key {
			return f.FocusIndex(i)
		}
	}
	return nil
}

// Next moves focus to the next field, wrapping around.
func (f *Form) Next() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusIndex((f.focus + 1) % len(f.fields))
}

// Prev moves focus to the previous field, wrapping around.
func (f *Form) Prev() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusIndex((f.focus - 1 + len(f.fields)) % len(f.fields))
}

// Update routes a key press to focus movement or the focused field.
func (f *Form) Update(msg tea.KeyPressMsg) tea.Cmd {
	cur := f.Focused()
	if cur == nil {
		return nil
	}

	vertical := false
	if v, ok := cur.(VerticalKeys); ok {
		vertical = v.UsesVerticalKeys()
	}

	switch msg.String() {
	case "tab":
		return f.Next()
	case "shift+tab":
		return f.Prev()
	case "down":
		if !vertical {
			return f.Next()
		}
	case "up":
		if !vertical {
			return f.Prev()
		}
	}

	return f.edit(cur, func() tea.Cmd { return cur.Update(msg) })
}

// HasClearableInput reports whether the focused field has input.
func (f *Form) HasClearableInput() bool {
	cur := f.Focused()
	return cur != nil && cur.HasClearableInput()
}

// ClearInput clears the focused field.
func (f *Form) ClearInput() tea.Cmd {
	cur := f.Focused()
	if cur == nil {
		return nil
	}
	return f.edit(cur, cur.ClearInput)
}

// edit runs fn and reports a change of fld's value.
func (f *Form) edit(fld Field, fn func() tea.Cmd) tea.Cmd {
	before := fld.Value()
	cmd := fn()
	if f.onChange != nil && fld.Value() != before {
		f.onChange(fld)
	}
	return cmd
}

func (f *Form) View() string {
	views := make([]string, len(f.fields))
	for i, fld := range f.fields {
		views[i] = fld.View()
	}
	return strings.Join(views, "\n\n")
}
