package components

import (
	"fmt"
	"strings"

	"monthwise/internal/tui/theme"
	"monthwise/internal/wizard"

	"github.com/charmbracelet/lipgloss"
)

// StepLabels are the wizard step names, in step order.
var StepLabels = []string{"Month", "Income", "Expenses", "Savings", "Review"}

// StepList renders the step indicator column: a check for passed steps,
// an arrow for the current one, dimmed labels for upcoming ones.
func StepList(s wizard.State) string {
	t := theme.Active
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	currentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	upcomingStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, label := range StepLabels {
		step := i + 1
		line := fmt.Sprintf("%d. %s", step, label)
		switch wizard.StepStatus(s, step) {
		case wizard.StatusComplete:
			b.WriteString(doneStyle.Render("✓ " + line))
		case wizard.StatusCurrent:
			b.WriteString(currentStyle.Render("› " + line))
		default:
			b.WriteString(upcomingStyle.Render("  " + line))
		}
		if i < len(StepLabels)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
