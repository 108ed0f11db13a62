package flows

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/styles"
	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

const reviewValueWidth = 44

// copiedMsg reports the outcome of copying the summary.
type copiedMsg struct {
	err error
}

// reviewPage shows everything collected so far and submits it.
type reviewPage struct {
	page
	copy   func(string) error
	status string
	failed bool
}

func newReviewPage(flow *onboarding.Flow, copyFn func(string) error) *reviewPage {
	return &reviewPage{
		page: page{step: onboarding.Review, flow: flow},
		copy: copyFn,
	}
}

func (p *reviewPage) Init() tea.Cmd {
	p.status = ""
	p.failed = false
	return nil
}

func (p *reviewPage) Update(msg tea.KeyPressMsg) (framework.Step, tea.Cmd, framework.StepResult) {
	switch msg.String() {
	case "enter":
		return p, nil, framework.StepSubmit
	case "ctrl+b", "left":
		return p, nil, framework.StepBack
	case "c":
		text := p.flow.Summary().String()
		copyFn := p.copy
		return p, func() tea.Msg {
			return copiedMsg{err: copyFn(text)}
		}, framework.StepContinue
	}
	return p, nil, framework.StepContinue
}

// HandleMsg records the result of a copy.
func (p *reviewPage) HandleMsg(msg tea.Msg) (framework.Step, tea.Cmd) {
	if m, ok := msg.(copiedMsg); ok {
		p.failed = m.err != nil
		if p.failed {
			p.status = "Copy failed: " + m.err.Error()
		} else {
			p.status = "Summary copied to clipboard"
		}
	}
	return p, nil
}

func (p *reviewPage) View() string {
	var b strings.Builder
	b.WriteString(renderHeader("Review Your Information",
		"Please review the information you provided before submitting"))

	for _, g := range p.flow.Summary().Groups {
		b.WriteString("\n\n")
		b.WriteString(styles.HeadingStyle.Render(g.Title))
		b.WriteString("\n")
		b.WriteString(renderRows(g.Rows))
	}

	b.WriteString("\n\n")
	b.WriteString(renderButton("Back", true))
	b.WriteString("  ")
	b.WriteString(renderButton("Submit for Verification", true))

	if p.status != "" {
		b.WriteString("\n")
		if p.failed {
			b.WriteString(framework.ErrorStyle().Render(p.status))
		} else {
			b.WriteString(styles.Checkmark(p.status))
		}
	}
	return b.String()
}

// renderRows renders summary rows with labels in an aligned column.
// Unlabelled rows are printed on their own.
func renderRows(rows []onboarding.Row) string {
	labelWidth := 0
	for _, r := range rows {
		if r.Label != "" {
			labelWidth = max(labelWidth, lipgloss.Width(r.Label)+2)
		}
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		value := framework.SummaryValueStyle().Render(styles.Truncate(r.Value, reviewValueWidth))
		if r.Label == "" {
			lines = append(lines, "  "+value)
			continue
		}
		label := framework.SummaryLabelStyle().Width(labelWidth).Render(r.Label + ":")
		lines = append(lines, "  "+label+value)
	}
	return strings.Join(lines, "\n")
}

func (p *reviewPage) Help() string {
	return framework.KeyHelp("enter submit", "ctrl+b/← back", "c copy summary", "esc cancel")
}
