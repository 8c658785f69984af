package tui

import (
	"fmt"
	"strings"

	"monthwise/internal/api"
	"monthwise/internal/budget"
	"monthwise/internal/tui/theme"
	"monthwise/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// prev returns the preceding calendar month.
func prevMonth(m budget.MonthYear) budget.MonthYear {
	if m.Month <= 1 {
		return budget.MonthYear{Month: 12, Year: m.Year - 1}
	}
	return budget.MonthYear{Month: m.Month - 1, Year: m.Year}
}

func (a App) updateMonthStep(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		a.monthCand = prevMonth(a.monthCand)
		a.monthErr = ""
	case "k", "up":
		a.monthCand = a.monthCand.Next()
		a.monthErr = ""
	case "enter":
		err := budget.ValidateMonthYear(
			a.monthCand.Month, a.monthCand.Year,
			a.months, a.mostRecent, api.HasUnlocked(a.budgets),
		)
		if err != nil {
			// Inline message next to the picker; never the wizard error.
			a.monthErr = err.Error()
			return a, nil
		}
		a.monthErr = ""
		a.dispatch(wizard.SetMonthYear{Month: a.monthCand.Month, Year: a.monthCand.Year})
		return a.advance()
	}
	return a, nil
}

func (a App) renderMonthStep() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString(label.Render("Which month is this budget for?"))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("  k ") + value.Render(a.monthCand.String()) + dim.Render(" j"))
	b.WriteString("\n\n")

	if budget.ExistsForMonth(a.monthCand.Month, a.monthCand.Year, a.months) {
		b.WriteString(dim.Render("  a budget already exists for this month"))
		b.WriteString("\n")
	}
	if len(a.months) > 0 && a.mostRecent != nil {
		b.WriteString(dim.Render(fmt.Sprintf("  most recent budget: %s", a.mostRecent)))
		b.WriteString("\n")
	}
	if a.monthErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  " + a.monthErr))
		b.WriteString("\n")
	}
	return b.String()
}
