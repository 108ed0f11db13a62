package fields

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

// Choice is one selectable option.
type Choice struct {
	Value string
	Label string
}

// choiceSource implements fuzzy.Source for choices.
type choiceSource []Choice

func (s choiceSource) String(i int) string { return s[i].Label }
func (s choiceSource) Len() int            { return len(s) }

// ChoiceField selects one value from a fixed list. Arrow keys move the
// selection; typing narrows the list with fuzzy matching and selects the
// best match.
type ChoiceField struct {
	key         string
	label       string
	placeholder string
	options     []Choice
	filtered    []fuzzy.Match
	filter      string
	selected    int // index into options, -1 if nothing selected
	focused     bool
}

// NewChoice creates a choice field. placeholder is shown while nothing is
// selected.
func NewChoice(key, label, placeholder string, options []Choice) *ChoiceField {
	f := &ChoiceField{
		key:         key,
		label:       label,
		placeholder: placeholder,
		options:     options,
		selected:    -1,
	}
	f.applyFilter()
	return f
}

func (f *ChoiceField) Key() string   { return f.key }
func (f *ChoiceField) Label() string { return f.label }

func (f *ChoiceField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *ChoiceField) Blur() {
	f.focused = false
	f.filter = ""
	f.applyFilter()
}

func (f *ChoiceField) Focused() bool { return f.focused }

// UsesVerticalKeys reports that up and down move the selection.
func (f *ChoiceField) UsesVerticalKeys() bool { return true }

func (f *ChoiceField) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "left":
		f.move(-1)
	case "down", "right":
		f.move(1)
	case "home":
		f.selectFiltered(0)
	case "end":
		f.selectFiltered(len(f.filtered) - 1)
	case "backspace":
		if f.filter == "" {
			f.selected = -1
			return nil
		}
		runes := []rune(f.filter)
		f.filter = string(runes[:len(runes)-1])
		f.applyFilter()
		f.selectFiltered(0)
	default:
		if msg.Text != "" {
			if text := framework.FilterRunes([]rune(msg.Text), framework.RuneFilterNone); text != "" {
				f.filter += text
				f.applyFilter()
				f.selectFiltered(0)
			}
		}
	}
	return nil
}

// move shifts the selection by delta within the filtered list, wrapping.
func (f *ChoiceField) move(delta int) {
	n := len(f.filtered)
	if n == 0 {
		return
	}
	pos := f.filteredPos()
	if pos < 0 {
		if delta > 0 {
			pos = -1
		} else {
			pos = 0
		}
	}
	f.selectFiltered(((pos+delta)%n + n) % n)
}

// filteredPos returns the position of the selection in the filtered list.
func (f *ChoiceField) filteredPos() int {
	for i, m := range f.filtered {
		if m.Index == f.selected {
			return i
		}
	}
	return -1
}

func (f *ChoiceField) selectFiltered(pos int) {
	if pos < 0 || pos >= len(f.filtered) {
		f.selected = -1
		return
	}
	f.selected = f.filtered[pos].Index
}

func (f *ChoiceField) applyFilter() {
	if f.filter == "" {
		f.filtered = make([]fuzzy.Match, len(f.options))
		for i, opt := range f.options {
			f.filtered[i] = fuzzy.Match{Str: opt.Label, Index: i}
		}
		return
	}
	// results are sorted by score, best first
	f.filtered = fuzzy.FindFrom(f.filter, choiceSource(f.options))
}

func (f *ChoiceField) View() string {
	var b strings.Builder
	b.WriteString(renderLabel(f.label, f.focused))
	b.WriteString("\n")

	if !f.focused {
		if f.selected < 0 {
			b.WriteString(indent(framework.HintStyle().Render(f.placeholder)))
		} else {
			b.WriteString(indent(framework.SummaryValueStyle().Render(f.options[f.selected].Label)))
		}
		return b.String()
	}

	if f.filter != "" {
		b.WriteString(indent(framework.FilterLabelStyle().Render("Filter: ") +
			framework.FilterStyle().Render(f.filter)))
		b.WriteString("\n")
	}

	if len(f.filtered) == 0 {
		b.WriteString(indent(framework.HintStyle().Render("No matches")))
		return b.String()
	}

	lines := make([]string, len(f.filtered))
	for i, m := range f.filtered {
		isSelected := m.Index == f.selected
		marker := "( ) "
		if isSelected {
			marker = "(•) "
		}
		label := highlightMatches(m.Str, m.MatchedIndexes, isSelected)
		if isSelected {
			lines[i] = framework.OptionSelectedStyle().Render(marker) + label
		} else {
			lines[i] = framework.OptionNormalStyle().Render(marker) + label
		}
	}
	b.WriteString(indent(strings.Join(lines, "\n")))
	return b.String()
}

// highlightMatches renders the label with matched characters highlighted.
func highlightMatches(label string, matchedIndexes []int, isSelected bool) string {
	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	style := framework.OptionNormalStyle()
	if isSelected {
		style = framework.OptionSelectedStyle()
	}

	var result strings.Builder
	// MatchedIndexes are byte offsets into the label.
	for i, r := range label {
		if matchSet[i] {
			result.WriteString(framework.MatchHighlightStyle().Render(string(r)))
		} else {
			result.WriteString(style.Render(string(r)))
		}
	}
	return result.String()
}

// Value returns the selected choice's value, or "" when nothing is selected.
func (f *ChoiceField) Value() string {
	if f.selected < 0 {
		return ""
	}
	return f.options[f.selected].Value
}

// SelectedLabel returns the selected choice's label.
func (f *ChoiceField) SelectedLabel() string {
	if f.selected < 0 {
		return ""
	}
	return f.options[f.selected].Label
}

// SetValue selects the choice with value v. Unknown values clear the
// selection.
func (f *ChoiceField) SetValue(v string) {
	f.selected = -1
	for i, opt := range f.options {
		if opt.Value == v {
			f.selected = i
			return
		}
	}
}

// Filter returns the text typed to narrow the list.
func (f *ChoiceField) Filter() string { return f.filter }

func (f *ChoiceField) HasClearableInput() bool {
	return f.filter != "" || f.selected >= 0
}

// ClearInput drops the filter first, then the selection.
func (f *ChoiceField) ClearInput() tea.Cmd {
	if f.filter != "" {
		f.filter = ""
		f.applyFilter()
		return nil
	}
	f.selected = -1
	return nil
}
