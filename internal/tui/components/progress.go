// Package components holds small reusable render helpers for the wizard TUI.
package components

import (
	"fmt"
	"strings"

	"monthwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a filled/empty bar with a trailing percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	filledStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))
	b.WriteString(" ")
	b.WriteString(pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100)))
	return b.String()
}
