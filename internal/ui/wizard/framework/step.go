package framework

import tea "charm.land/bubbletea/v2"

// StepResult indicates what action to take after a step update.
type StepResult int

const (
	// StepContinue means stay on the current step.
	StepContinue StepResult = iota
	// StepAdvance asks the navigator to move forward.
	StepAdvance
	// StepBack asks the navigator to move back.
	StepBack
	// StepSubmit asks the navigator to submit from the review step.
	StepSubmit
	// StepFinish asks the navigator to leave the terminal step.
	StepFinish
)

// Step is the interface for wizard steps.
type Step interface {
	// ID returns a unique identifier for this step.
	ID() string

	// Title returns the display title for the step tab.
	Title() string

	// Init returns an initial command when entering this step.
	Init() tea.Cmd

	// Update handles key events and returns the updated step,
	// a command to run, and a result indicating navigation.
	Update(msg tea.KeyPressMsg) (Step, tea.Cmd, StepResult)

	// View renders the step content.
	View() string

	// Help returns the help text for this step.
	Help() string

	// HasClearableInput returns true if the step has input that can be cleared.
	// Used to determine ESC behavior: clear input first, then cancel.
	HasClearableInput() bool

	// ClearInput clears any user input (filter, text field, etc).
	ClearInput() tea.Cmd
}

// MessageHandler is implemented by steps that consume non-key messages,
// such as the result of a command they returned.
type MessageHandler interface {
	HandleMsg(msg tea.Msg) (Step, tea.Cmd)
}

// Navigator owns the step position. The wizard renders the step at Index
// and asks the navigator to perform every transition a step requests.
// A transition that returns false leaves the wizard on the same step.
type Navigator interface {
	Index() int
	Count() int
	Forward() bool
	Back() bool
	Submit() bool
	Finish() bool
	Finished() bool
}

// ProgressReporter is implemented by navigators that expose a completion
// percentage. The wizard draws a progress bar while ShowProgress is true.
type ProgressReporter interface {
	ShowProgress() bool
	Progress() int
}
