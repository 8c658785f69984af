package tui

import (
	"fmt"
	"strings"

	"monthwise/internal/budget"
	"monthwise/internal/cli"
	"monthwise/internal/tui/theme"
	"monthwise/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateReviewStep(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "t":
		a.lockAfterSave = !a.lockAfterSave
	case "enter":
		a.dispatch(wizard.SetError{Err: ""})
		a.dispatch(wizard.SetSubmitting{Submitting: true})
		return a, tea.Batch(a.spinner.Tick, saveCmd(a.svc, a.state, a.lockAfterSave))
	}
	return a, nil
}

func (a App) renderReviewStep() string {
	t := theme.Active
	s := a.state

	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	month := budget.MonthYear{Month: s.Month, Year: s.Year}

	var b strings.Builder
	b.WriteString(label.Render("Review ") + value.Bold(true).Render(month.String()))
	b.WriteString("\n\n")

	b.WriteString(reviewLine("Income", len(s.Income), s.IncomeTotal()))
	b.WriteString(reviewLine("Expenses", len(s.Expenses), s.ExpenseTotal()))
	b.WriteString(reviewLine("Savings", len(s.Savings), s.SavingsTotal()))
	b.WriteString("\n")

	balance := s.Balance()
	balStyle := lipgloss.NewStyle().Foreground(t.Green)
	balHint := "every euro has a destination"
	if balance > 0 {
		balStyle = lipgloss.NewStyle().Foreground(t.Yellow)
		balHint = "left to assign"
	} else if balance < 0 {
		balStyle = lipgloss.NewStyle().Foreground(t.Red)
		balHint = "over budget"
	}
	b.WriteString(fmt.Sprintf("%-10s %s  %s\n",
		label.Render("Balance"),
		balStyle.Render(fmt.Sprintf("%12s", cli.FormatSignedMoney(balance))),
		dim.Render(balHint)))
	b.WriteString("\n")

	switch {
	case a.lockAfterSave && balance == 0:
		b.WriteString(dim.Render("The budget will be locked after saving."))
	case a.lockAfterSave:
		b.WriteString(dim.Render("Lock after save is on, but only balanced budgets get locked."))
	default:
		b.WriteString(dim.Render("The budget will stay unlocked after saving."))
	}
	b.WriteString("\n")

	if s.Submitting {
		b.WriteString("\n" + a.spinner.View() + label.Render(" Saving budget...") + "\n")
	}
	return b.String()
}

func reviewLine(name string, count int, total float64) string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	return fmt.Sprintf("%-10s %s  %s\n",
		label.Render(name),
		value.Render(fmt.Sprintf("%12s", cli.FormatMoney(total))),
		dim.Render(cli.Pluralize(count, "item")))
}
