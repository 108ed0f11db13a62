package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/onboard/internal/config"
	"github.com/raphi011/onboard/internal/log"
	"github.com/raphi011/onboard/internal/output"
	"github.com/raphi011/onboard/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage onboard configuration.

Config file: ~/.config/onboard/config.toml`,
		Example: `  onboard config init   # Create default config
  onboard config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file at ~/.config/onboard/config.toml.

If the file exists you are asked before it is replaced. Use -f to
overwrite without asking.`,
		Example: `  onboard config init      # Create config
  onboard config init -f   # Overwrite existing config
  onboard config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}

			if !force {
				ok, err := confirmOverwrite()
				if err != nil {
					return err
				}
				if !ok {
					l.Println("Keeping existing config")
					return nil
				}
			}

			// An existing file was either confirmed above or force is set
			path, err := config.Init(true)
			if err != nil {
				return fmt.Errorf("create config: %w", err)
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

// confirmOverwrite reports whether config init may write the config file.
// A missing file needs no confirmation. Without a terminal an existing file
// is an error.
func confirmOverwrite() (bool, error) {
	path, err := config.Path()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		return true, nil
	}

	if !isInteractive(os.Stdin) {
		return false, fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
	}

	res, err := prompt.Confirm(fmt.Sprintf("Overwrite %s?", path))
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Shows the config file merged with defaults and environment overrides
(ONBOARD_NAME, ONBOARD_EMAIL, ONBOARD_THEME, ONBOARD_THEME_MODE).`,
		Example: `  onboard config show          # Show config
  onboard config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			effCfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(effCfg)
			}

			path, err := config.Path()
			if err != nil {
				path = "(unknown)"
			}
			out.Printf("Config file: %s\n\n", path)
			out.Printf("user.name: %s\n", orUnset(effCfg.User.Name))
			out.Printf("user.email: %s\n", orUnset(effCfg.User.Email))
			out.Printf("wizard.show_complete_progress: %v\n", effCfg.Wizard.ShowCompleteProgress)
			out.Printf("wizard.date_layout: %s\n", effCfg.Wizard.DateLayout)
			out.Printf("theme.name: %s\n", orUnset(effCfg.Theme.Name))
			out.Printf("theme.mode: %s\n", orUnset(effCfg.Theme.Mode))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
