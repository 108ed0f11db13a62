package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/onboard/internal/output"
	"github.com/raphi011/onboard/internal/ui/dashboard"
)

func newDashboardCmd() *cobra.Command {
	var (
		name  string
		email string
		width int
	)

	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Print the account dashboard",
		Aliases: []string{"dash"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Print the account dashboard shown after verification.

Uses the configured user unless --name/--email are given. Cards are laid
out side by side when the terminal is wide enough.`,
		Example: `  onboard dashboard                 # Dashboard for the configured user
  onboard dashboard --width 40      # Force the stacked layout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			user, err := resolveUser(name, email, cfg.User, nil)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("width") {
				width = terminalWidth(os.Stdout)
			}

			out.Print(dashboard.Render(user, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name to greet")
	cmd.Flags().StringVar(&email, "email", "", "Email to show")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Layout width (default: terminal width)")

	return cmd
}
