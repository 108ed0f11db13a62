package flows

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/wizard/framework"
)

// OnboardingParams configures the onboarding wizard.
type OnboardingParams struct {
	// User is the signed-up user. May be nil.
	User *onboarding.User

	// OnComplete is called once, when the user leaves the Complete page.
	OnComplete func()

	// ShowCompleteProgress keeps the progress bar on the Complete page.
	ShowCompleteProgress bool

	// DateLayout is the layout the date of birth is typed in.
	// Empty means onboarding.DateLayout.
	DateLayout string

	// Observer receives every transition the flow performs.
	Observer func(onboarding.Transition)

	// Copy writes text to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
}

// OnboardingResult reports how the wizard ended. The collected session is
// dropped with the wizard.
type OnboardingResult struct {
	Completed bool
	Cancelled bool
}

// NewOnboardingWizard builds the onboarding wizard and the flow that
// drives it.
func NewOnboardingWizard(params OnboardingParams) (*framework.Wizard, *onboarding.Flow) {
	opts := []onboarding.Option{onboarding.WithCompleteProgress(params.ShowCompleteProgress)}
	if params.Observer != nil {
		opts = append(opts, onboarding.WithObserver(params.Observer))
	}
	flow := onboarding.New(params.User, params.OnComplete, opts...)

	copyFn := params.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	w := framework.NewWizard("Identity Verification", flow)
	w.AddStep(newWelcomePage(flow))
	w.AddStep(newPersonalPage(flow, params.DateLayout))
	w.AddStep(newAddressPage(flow))
	w.AddStep(newDocumentPage(flow))
	w.AddStep(newReviewPage(flow, copyFn))
	w.AddStep(newCompletePage(flow))

	if user, ok := flow.User(); ok && user.Name != "" {
		w.WithInfoLine(func(*framework.Wizard) string {
			return fmt.Sprintf("Signed in as %s", user.Name)
		})
	}

	return w, flow
}

// OnboardingInteractive runs the onboarding wizard in the terminal.
func OnboardingInteractive(params OnboardingParams) (OnboardingResult, error) {
	w, flow := NewOnboardingWizard(params)

	result, err := w.Run()
	if err != nil {
		return OnboardingResult{}, err
	}

	if result.IsCancelled() {
		return OnboardingResult{Cancelled: true}, nil
	}
	return OnboardingResult{Completed: flow.Finished()}, nil
}
