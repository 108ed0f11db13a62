package flows

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/wizard/fields"
	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

// formPage collects the fields of one data step. Every edit is written to
// the flow; continuing is possible once the flow has no blockers.
type formPage struct {
	page
	heading     string
	description string
	form        *fields.Form
	showMissing bool
	err         error
}

func newFormPage(flow *onboarding.Flow, step onboarding.Step, heading, description string, flds ...fields.Field) *formPage {
	p := &formPage{
		page:        page{step: step, flow: flow},
		heading:     heading,
		description: description,
	}
	p.form = fields.NewForm(flds...).OnChange(p.store)
	return p
}

func newPersonalPage(flow *onboarding.Flow, dateLayout string) *formPage {
	return newFormPage(flow, onboarding.Personal,
		"Personal Information",
		"Please provide your personal details for identity verification",
		fields.NewDate(string(onboarding.FieldDateOfBirth), onboarding.FieldDateOfBirth.Label(), dateLayout),
		fields.NewText(string(onboarding.FieldPhone), onboarding.FieldPhone.Label(), "+1 (555) 000-0000").
			WithRuneFilter(framework.RuneFilterPhone),
		fields.NewChoice(string(onboarding.FieldNationality), onboarding.FieldNationality.Label(),
			"Select nationality", catalogChoices(onboarding.Nationalities)),
		fields.NewText(string(onboarding.FieldOccupation), onboarding.FieldOccupation.Label(), "Software Engineer"),
	)
}

func newAddressPage(flow *onboarding.Flow) *formPage {
	return newFormPage(flow, onboarding.Address,
		"Address Verification",
		"Please provide your current residential address",
		fields.NewText(string(onboarding.FieldStreet), onboarding.FieldStreet.Label(), "123 Main Street, Apt 4B"),
		fields.NewText(string(onboarding.FieldCity), onboarding.FieldCity.Label(), "New York"),
		fields.NewText(string(onboarding.FieldState), onboarding.FieldState.Label(), "NY"),
		fields.NewText(string(onboarding.FieldPostalCode), onboarding.FieldPostalCode.Label(), "10001"),
		fields.NewChoice(string(onboarding.FieldCountry), onboarding.FieldCountry.Label(),
			"Select country", catalogChoices(onboarding.Countries)),
	)
}

func newDocumentPage(flow *onboarding.Flow) *formPage {
	return newFormPage(flow, onboarding.Document,
		"Document Verification",
		"Upload a government-issued ID and a selfie for verification",
		fields.NewChoice(string(onboarding.FieldDocumentType), onboarding.FieldDocumentType.Label(),
			"Select document type", catalogChoices(onboarding.DocumentTypes)),
		fields.NewText(string(onboarding.FieldDocumentNumber), onboarding.FieldDocumentNumber.Label(), "Enter document number").
			WithRuneFilter(framework.RuneFilterNoSpaces),
		fields.NewFile(string(onboarding.FieldDocumentFile), "Upload Document", "PNG, JPG or PDF up to 10MB"),
		fields.NewFile(string(onboarding.FieldSelfieFile), "Upload Selfie", "Take a clear photo of your face"),
	)
}

// store writes an edited field to the flow.
func (p *formPage) store(f fields.Field) {
	p.err = p.flow.Set(onboarding.Field(f.Key()), f.Value())
	if p.flow.CanForward() {
		p.showMissing = false
	}
}

func (p *formPage) Init() tea.Cmd {
	return p.form.Init()
}

func (p *formPage) Update(msg tea.KeyPressMsg) (framework.Step, tea.Cmd, framework.StepResult) {
	switch msg.String() {
	case "enter":
		if p.flow.CanForward() {
			p.showMissing = false
			return p, nil, framework.StepAdvance
		}
		p.showMissing = true
		if blockers := p.flow.Blockers(); len(blockers) > 0 {
			return p, p.form.FocusKey(string(blockers[0])), framework.StepContinue
		}
		return p, nil, framework.StepContinue
	case "ctrl+b":
		return p, nil, framework.StepBack
	}

	return p, p.form.Update(msg), framework.StepContinue
}

func (p *formPage) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(p.heading, p.description))
	b.WriteString("\n\n")
	b.WriteString(p.form.View())
	b.WriteString("\n\n")
	b.WriteString(renderButton("Back", true))
	b.WriteString("  ")
	b.WriteString(renderButton("Continue", p.flow.CanForward()))

	if p.showMissing {
		if blockers := p.flow.Blockers(); len(blockers) > 0 {
			labels := make([]string, len(blockers))
			for i, f := range blockers {
				labels[i] = f.Label()
			}
			b.WriteString("\n")
			b.WriteString(framework.WarningStyle().Render("Please complete: " + strings.Join(labels, ", ")))
		}
	}
	if p.err != nil {
		b.WriteString("\n")
		b.WriteString(framework.ErrorStyle().Render(p.err.Error()))
	}
	return b.String()
}

func (p *formPage) Help() string {
	return framework.KeyHelp("tab/↑↓ move", "enter continue", "ctrl+b back", "esc clear/cancel")
}

func (p *formPage) HasClearableInput() bool {
	return p.form.HasClearableInput()
}

func (p *formPage) ClearInput() tea.Cmd {
	return p.form.ClearInput()
}
