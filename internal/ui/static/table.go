// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the step table
// printed by "onboard steps".
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/styles"
)

// StepTableHeaders are the column headers matching StepTableRow.
var StepTableHeaders = []string{"#", "STEP", "TITLE", "PROGRESS", "REQUIRED"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// StepTableRow returns the cells for step: position (1-based), name,
// title, progress and the labels of its required fields. Steps without a
// gate show a muted dash.
func StepTableRow(step onboarding.Step) []string {
	required := styles.MutedStyle.Render("-")
	if fields := onboarding.RequiredFields(step); len(fields) > 0 {
		labels := make([]string, len(fields))
		for i, f := range fields {
			labels[i] = f.Label()
		}
		required = strings.Join(labels, ", ")
	}

	return []string{
		strconv.Itoa(step.Index() + 1),
		step.String(),
		step.Title(),
		strconv.Itoa(step.Progress()) + "%",
		required,
	}
}

// RenderSteps renders the table of all onboarding steps.
func RenderSteps() string {
	steps := onboarding.Steps()
	rows := make([][]string, len(steps))
	for i, s := range steps {
		rows[i] = StepTableRow(s)
	}
	return RenderTable(StepTableHeaders, rows)
}
