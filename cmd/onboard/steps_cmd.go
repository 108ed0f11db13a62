package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/output"
	"github.com/raphi011/onboard/internal/ui/static"
)

// StepInfo describes one step for JSON output.
type StepInfo struct {
	Index    int      `json:"index"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Progress int      `json:"progress"`
	Required []string `json:"required"`
}

func newStepsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "steps",
		Short:   "List the verification steps",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the verification steps in order.

Shows each step's progress percentage and the fields that must be filled
in before moving past it.`,
		Example: `  onboard steps          # Table output
  onboard steps --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				return out.JSON(stepInfos())
			}

			out.Print(static.RenderSteps())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func stepInfos() []StepInfo {
	steps := onboarding.Steps()
	infos := make([]StepInfo, len(steps))
	for i, s := range steps {
		required := []string{}
		for _, f := range onboarding.RequiredFields(s) {
			required = append(required, string(f))
		}
		infos[i] = StepInfo{
			Index:    s.Index(),
			Name:     s.String(),
			Title:    s.Title(),
			Progress: s.Progress(),
			Required: required,
		}
	}
	return infos
}
