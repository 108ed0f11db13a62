package flows

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/styles"
	"github.com/raphi011/onboard/internal/ui/wizard/fields"
	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

const (
	textWidth = 64
	cardWidth = 24
)

// page carries the step identity every onboarding page shares.
type page struct {
	step onboarding.Step
	flow *onboarding.Flow
}

func (p page) ID() string    { return p.step.String() }
func (p page) Title() string { return p.step.Title() }

func (p page) HasClearableInput() bool { return false }
func (p page) ClearInput() tea.Cmd     { return nil }

// renderHeader renders a page heading with its description wrapped below.
func renderHeader(heading, description string) string {
	return framework.HeadingStyle().Render(heading) + "\n" +
		framework.DescriptionStyle().Width(textWidth).Render(description)
}

// renderButton renders an action, struck through when disabled.
func renderButton(label string, enabled bool) string {
	if enabled {
		return framework.ButtonStyle().Render("[ " + label + " ]")
	}
	return framework.ButtonDisabledStyle().Render("[ " + label + " ]")
}

// catalogChoices converts an onboarding catalog into field choices.
func catalogChoices(catalog []onboarding.Choice) []fields.Choice {
	choices := make([]fields.Choice, len(catalog))
	for i, c := range catalog {
		choices[i] = fields.Choice{Value: c.Code, Label: c.Label}
	}
	return choices
}

// welcomePage introduces the verification process.
type welcomePage struct {
	page
}

func newWelcomePage(flow *onboarding.Flow) *welcomePage {
	return &welcomePage{page{step: onboarding.Welcome, flow: flow}}
}

func (p *welcomePage) Init() tea.Cmd { return nil }

func (p *welcomePage) Update(msg tea.KeyPressMsg) (framework.Step, tea.Cmd, framework.StepResult) {
	switch msg.String() {
	case "enter", "right":
		return p, nil, framework.StepAdvance
	}
	return p, nil, framework.StepContinue
}

var welcomeCards = []struct {
	title       string
	description string
}{
	{"Personal Info", "Provide your basic details"},
	{"Address", "Verify your location"},
	{"Documents", "Upload ID verification"},
}

func (p *welcomePage) View() string {
	cards := make([]string, len(welcomeCards))
	for i, c := range welcomeCards {
		cards[i] = styles.CardStyle.Width(cardWidth).Render(
			styles.HeadingStyle.Render(c.title) + "\n" +
				framework.DescriptionStyle().Render(c.description))
	}

	var b strings.Builder
	b.WriteString(renderHeader("Welcome to Our Platform!",
		"To ensure the security of our platform, we need to verify your identity. "+
			"This process will take about 5 minutes."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	b.WriteString(renderButton("Get Started", true))
	return b.String()
}

func (p *welcomePage) Help() string {
	return framework.KeyHelp("enter get started", "esc cancel")
}

// completePage confirms the submission and hands off to the dashboard.
type completePage struct {
	page
}

func newCompletePage(flow *onboarding.Flow) *completePage {
	return &completePage{page{step: onboarding.Complete, flow: flow}}
}

func (p *completePage) Init() tea.Cmd { return nil }

func (p *completePage) Update(msg tea.KeyPressMsg) (framework.Step, tea.Cmd, framework.StepResult) {
	if msg.String() == "enter" {
		return p, nil, framework.StepFinish
	}
	return p, nil, framework.StepContinue
}

var nextSteps = []string{
	"Our team will review your documents",
	"You'll receive an email notification once verified",
	"Full platform access will be granted after approval",
}

func (p *completePage) View() string {
	var b strings.Builder
	b.WriteString(framework.SuccessStyle().Render(styles.SymbolCheck) + " ")
	b.WriteString(renderHeader("Verification Submitted!",
		"Your information has been submitted for review. "+
			"We'll verify your details and notify you within 24-48 hours."))
	b.WriteString("\n\n")

	var list strings.Builder
	list.WriteString(styles.HeadingStyle.Render("What happens next?"))
	for _, s := range nextSteps {
		list.WriteString("\n" + styles.Checkmark(s))
	}
	b.WriteString(styles.CardStyle.Render(list.String()))
	b.WriteString("\n\n")
	b.WriteString(renderButton("Go to Dashboard", true))
	return b.String()
}

func (p *completePage) Help() string {
	return framework.KeyHelp("enter go to dashboard", "esc quit")
}
