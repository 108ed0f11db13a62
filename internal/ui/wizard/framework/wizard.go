// Package framework provides the core wizard orchestration system.
//
// A wizard is a multi-step interactive flow. The Wizard renders the
// chrome (title, step tabs, progress bar, help line) and delegates key
// handling to the current Step. Where the wizard goes next is decided by
// a Navigator: steps only request a transition, and the navigator may
// refuse it.
package framework

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/onboard/internal/ui/styles"
)

// ErrNoSteps is returned by Run when the wizard has no steps.
var ErrNoSteps = errors.New("wizard has no steps")

const progressWidth = 40

// Wizard orchestrates a multi-step interactive flow.
type Wizard struct {
	title          string
	nav            Navigator
	steps          []Step
	stepIndex      map[string]int // id -> index
	infoLine       func(*Wizard) string
	progress       progress.Model
	done           bool
	cancelled      bool
	width          int
	height         int
	confirmedSteps map[string]bool // steps the user has moved forward from
}

// NewWizard creates a new wizard driven by nav.
func NewWizard(title string, nav Navigator) *Wizard {
	return &Wizard{
		title:     title,
		nav:       nav,
		stepIndex: make(map[string]int),
		progress: progress.New(
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
			progress.WithColors(styles.Primary, styles.Accent),
		),
		width:          80,
		height:         24,
		confirmedSteps: make(map[string]bool),
	}
}

// AddStep adds a step to the wizard. Steps must be added in the
// navigator's order, one per navigator index.
func (w *Wizard) AddStep(step Step) *Wizard {
	w.stepIndex[step.ID()] = len(w.steps)
	w.steps = append(w.steps, step)
	return w
}

// WithInfoLine sets a dynamic info line function.
func (w *Wizard) WithInfoLine(fn func(*Wizard) string) *Wizard {
	w.infoLine = fn
	return w
}

// GetStep returns a step by ID.
func (w *Wizard) GetStep(id string) Step {
	if idx, ok := w.stepIndex[id]; ok {
		return w.steps[idx]
	}
	return nil
}

// Navigator returns the navigator driving the wizard.
func (w *Wizard) Navigator() Navigator {
	return w.nav
}

// IsCancelled returns true if the wizard was cancelled.
func (w *Wizard) IsCancelled() bool {
	return w.cancelled
}

// IsDone returns true once the wizard has finished or was cancelled.
func (w *Wizard) IsDone() bool {
	return w.done
}

// CurrentStepID returns the current step's ID, or "" if the navigator
// points outside the registered steps.
func (w *Wizard) CurrentStepID() string {
	if step := w.current(); step != nil {
		return step.ID()
	}
	return ""
}

// StepCount returns the number of steps.
func (w *Wizard) StepCount() int {
	return len(w.steps)
}

// Validate checks that the steps line up with the navigator.
func (w *Wizard) Validate() error {
	if len(w.steps) == 0 {
		return ErrNoSteps
	}
	if n := w.nav.Count(); n != len(w.steps) {
		return fmt.Errorf("wizard has %d steps, navigator has %d", len(w.steps), n)
	}
	return nil
}

// Run executes the wizard and returns when complete or cancelled.
// The TUI renders to stderr so stdout remains available for piping.
func (w *Wizard) Run() (*Wizard, error) {
	if err := w.Validate(); err != nil {
		return w, err
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(w,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(*Wizard), nil
}

// BubbleTea Model interface

func (w *Wizard) Init() tea.Cmd {
	// Steps before the starting position were completed by the navigator.
	for i := 0; i < w.nav.Index() && i < len(w.steps); i++ {
		w.confirmedSteps[w.steps[i].ID()] = true
	}
	if step := w.current(); step != nil {
		return step.Init()
	}
	return nil
}

func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyPressMsg:
		return w.handleKey(msg)
	}

	idx := w.nav.Index()
	if step := w.current(); step != nil {
		if h, ok := step.(MessageHandler); ok {
			newStep, cmd := h.HandleMsg(msg)
			w.steps[idx] = newStep
			return w, cmd
		}
	}
	return w, nil
}

func (w *Wizard) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	step := w.current()

	switch msg.String() {
	case "ctrl+c":
		return w.cancel()
	case "esc":
		// If step has clearable input, clear it first
		if step != nil && step.HasClearableInput() {
			return w, step.ClearInput()
		}
		return w.cancel()
	}

	if step == nil {
		return w, nil
	}

	idx := w.nav.Index()
	newStep, cmd, result := step.Update(msg)
	w.steps[idx] = newStep

	moved := false
	switch result {
	case StepAdvance:
		moved = w.nav.Forward()
	case StepBack:
		moved = w.nav.Back()
	case StepSubmit:
		moved = w.nav.Submit()
	case StepFinish:
		w.nav.Finish()
	}

	if w.nav.Finished() {
		w.done = true
		return w, tea.Quit
	}

	if moved {
		if result != StepBack {
			w.confirmedSteps[newStep.ID()] = true
		}
		if next := w.current(); next != nil {
			return w, tea.Batch(cmd, next.Init())
		}
	}

	return w, cmd
}

func (w *Wizard) cancel() (tea.Model, tea.Cmd) {
	w.cancelled = true
	w.done = true
	return w, tea.Quit
}

func (w *Wizard) current() Step {
	idx := w.nav.Index()
	if idx < 0 || idx >= len(w.steps) {
		return nil
	}
	return w.steps[idx]
}

func (w *Wizard) View() tea.View {
	if w.done {
		return tea.NewView("")
	}

	var b strings.Builder

	b.WriteString(TitleStyle().Render(w.title))
	b.WriteString("\n\n")

	if w.infoLine != nil {
		if info := w.infoLine(w); info != "" {
			b.WriteString(InfoStyle().Render(info))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(w.renderStepTabs())
	b.WriteString("\n\n")

	if bar := w.renderProgress(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n\n")
	}

	step := w.current()
	if step != nil {
		b.WriteString(step.View())
	}
	b.WriteString("\n")

	if step != nil {
		b.WriteString(HelpStyle().Render(step.Help()))
	}

	return tea.NewView(BorderStyle().Render(b.String()))
}

func (w *Wizard) renderStepTabs() string {
	var tabs []string
	current := w.nav.Index()

	for i, step := range w.steps {
		isActive := i == current
		isConfirmed := w.confirmedSteps[step.ID()]
		label := fmt.Sprintf("%d. %s", i+1, step.Title())

		var tabText string
		switch {
		case isActive && isConfirmed:
			// Went back to edit a step already passed
			tabText = StepCheckStyle().Render("✓ ") + StepActiveStyle().Render(label)
		case isActive:
			tabText = "  " + StepActiveStyle().Render(label)
		case isConfirmed:
			tabText = StepCheckStyle().Render("✓ ") + StepCompletedStyle().Render(label)
		default:
			tabText = "  " + StepInactiveStyle().Render(label)
		}

		tabs = append(tabs, tabText)
	}

	line := strings.Join(tabs, StepArrowStyle().Render(" → "))
	// Border and padding take 5 cells.
	return styles.Truncate(line, w.width-5)
}

func (w *Wizard) renderProgress() string {
	pr, ok := w.nav.(ProgressReporter)
	if !ok || !pr.ShowProgress() {
		return ""
	}
	pct := min(max(pr.Progress(), 0), 100)
	return w.progress.ViewAs(float64(pct)/100) + " " + ProgressLabelStyle().Render(fmt.Sprintf("%3d%%", pct))
}
