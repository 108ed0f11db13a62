package prompt

import (
	"errors"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/onboard/internal/ui/styles"
)

// ErrEmpty is reported inline when a required prompt is submitted blank.
var ErrEmpty = errors.New("value cannot be empty")

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

// TextInputOptions configures a text input prompt.
type TextInputOptions struct {
	Placeholder string
	Initial     string
	Required    bool               // reject blank input
	Validate    func(string) error // runs on the trimmed value
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	required  bool
	validate  func(string) error
	err       error
	done      bool
	cancelled bool
}

func newTextInputModel(prompt string, opts TextInputOptions) textInputModel {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 156
	ti.SetWidth(50)
	ti.SetValue(opts.Initial)
	ti.Focus()

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
		required:  opts.Required,
		validate:  opts.Validate,
	}
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			if err := m.check(); err != nil {
				m.err = err
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
		m.err = nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) check() error {
	value := m.value()
	if m.required && value == "" {
		return ErrEmpty
	}
	if m.validate != nil && value != "" {
		return m.validate(value)
	}
	return nil
}

func (m textInputModel) value() string {
	return strings.TrimSpace(m.textInput.Value())
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	if m.err != nil {
		b.WriteString("\n" + styles.ErrorStyle.Render(m.err.Error()))
	}
	return tea.NewView(b.String())
}

// TextInput shows a text input prompt on stderr and returns the trimmed input.
func TextInput(prompt string, opts TextInputOptions) (TextInputResult, error) {
	p := tea.NewProgram(newTextInputModel(prompt, opts),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	finalModel, err := p.Run()
	if err != nil {
		return TextInputResult{}, err
	}
	m := finalModel.(textInputModel)
	return TextInputResult{
		Value:     m.value(),
		Cancelled: m.cancelled,
	}, nil
}
