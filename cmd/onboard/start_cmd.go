package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/onboard/internal/log"
	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/output"
	"github.com/raphi011/onboard/internal/ui/dashboard"
	"github.com/raphi011/onboard/internal/ui/wizard/flows"
)

// errNoTerminal is returned when an interactive command runs without a TTY.
var errNoTerminal = errors.New("onboard start needs an interactive terminal on stdin")

func newStartCmd() *cobra.Command {
	var (
		name        string
		email       string
		noDashboard bool
	)

	cmd := &cobra.Command{
		Use:     "start",
		Short:   "Start identity verification",
		Aliases: []string{"verify"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Start the identity verification wizard.

The wizard runs through Welcome, Personal Info, Address, Documents and
Review. Submitting on the review step completes verification and prints
the account dashboard.

The user is taken from --name/--email, then the [user] config section,
then ONBOARD_NAME/ONBOARD_EMAIL. Anything still missing is asked for.

Keys: enter continues, tab moves between fields, ctrl+b goes back,
esc clears the focused field or cancels.`,
		Example: `  onboard start                                 # Ask for name and email first
  onboard start --name "Jane Doe"               # Skip the name prompt
  onboard start --name Jane --email j@x.io -v   # Log step transitions
  onboard start --no-dashboard                  # Only run the wizard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if !isInteractive(os.Stdin) {
				return errNoTerminal
			}

			user, err := resolveUser(name, email, cfg.User, promptAsk)
			if errors.Is(err, errPromptCancelled) {
				l.Println("Cancelled")
				return nil
			}
			if err != nil {
				return err
			}
			l.Debug("starting onboarding", "name", user.Name, "email", user.Email)

			done := l.Timed("onboarding wizard")
			start := time.Now()
			result, err := flows.OnboardingInteractive(flows.OnboardingParams{
				User: user,
				OnComplete: func() {
					l.Debug("verification submitted")
				},
				ShowCompleteProgress: cfg.Wizard.ShowCompleteProgress,
				DateLayout:           cfg.Wizard.DateLayout,
				Observer: func(t onboarding.Transition) {
					l.Debug("transition", "from", t.From, "to", t.To, "kind", t.Kind)
				},
			})
			done(time.Since(start))
			if err != nil {
				return fmt.Errorf("onboarding: %w", err)
			}

			if !result.Completed {
				l.Println("Verification cancelled")
				return nil
			}

			if !noDashboard {
				out.Print(dashboard.Render(user, terminalWidth(os.Stdout)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name of the signed-up user")
	cmd.Flags().StringVar(&email, "email", "", "Email of the signed-up user")
	cmd.Flags().BoolVar(&noDashboard, "no-dashboard", false, "Don't print the dashboard after completion")

	return cmd
}

func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// terminalWidth returns the width of f, or 0 when f is not a terminal.
// The dashboard lays cards out side by side for 0.
func terminalWidth(f *os.File) int {
	w, _, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}
	return w
}
