// Package flows provides the interactive onboarding wizard.
//
// The wizard has one page per onboarding step. Pages render the step and
// turn key presses into edits and transition requests; the underlying
// [onboarding.Flow] decides whether a transition happens. Field edits are
// written to the flow as they are typed, so a page that is left and
// revisited shows what was entered before.
//
// Entry points:
//   - [OnboardingInteractive]: run the wizard in the terminal
//   - [NewOnboardingWizard]: build the wizard model without running it
package flows
