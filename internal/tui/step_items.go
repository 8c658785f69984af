package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"monthwise/internal/api"
	"monthwise/internal/budget"
	"monthwise/internal/cli"
	"monthwise/internal/tui/theme"
	"monthwise/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// stepKind maps the current step to the collection it edits.
func (a App) stepKind() wizard.Kind {
	switch a.state.Step {
	case wizard.StepIncome:
		return wizard.KindIncome
	case wizard.StepExpenses:
		return wizard.KindExpense
	default:
		return wizard.KindSavings
	}
}

// itemRow is the step-agnostic projection used for listing and editing.
type itemRow struct {
	id      string
	name    string
	amount  float64
	account string
	valid   bool
	note    string
}

func (a App) stepRows() []itemRow {
	switch a.stepKind() {
	case wizard.KindIncome:
		return itemRows(a.state.Income)
	case wizard.KindExpense:
		rows := make([]itemRow, len(a.state.Expenses))
		for i, it := range a.state.Expenses {
			rows[i] = itemRow{
				id: it.ID, name: it.Name, amount: it.Amount,
				account: it.BankAccountName, valid: it.Valid(),
			}
			if it.RecurringExpenseID != "" {
				rows[i].note = "from template"
			}
		}
		return rows
	default:
		return itemRows(a.state.Savings)
	}
}

func itemRows(items []budget.Item) []itemRow {
	rows := make([]itemRow, len(items))
	for i, it := range items {
		rows[i] = itemRow{
			id: it.ID, name: it.Name, amount: it.Amount,
			account: it.BankAccountName, valid: it.Valid(),
		}
	}
	return rows
}

func (a App) updateItemsStep(key string) (tea.Model, tea.Cmd) {
	rows := a.stepRows()

	switch key {
	case "j", "down":
		if a.cursor < len(rows)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "a":
		return a.openItemForm(itemFormInit{})
	case "e":
		if a.cursor < len(rows) {
			return a.openEditForm(rows[a.cursor].id)
		}
	case "d":
		if a.cursor < len(rows) {
			a.dispatch(wizard.RemoveItem{Kind: a.stepKind(), ID: rows[a.cursor].id})
			if a.cursor > 0 {
				a.cursor--
			}
		}
	case "r":
		if a.state.Step == wizard.StepExpenses && len(a.recurring) > 0 {
			a.picking = true
			a.pickCursor = 0
		}
	case "enter":
		return a.advance()
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Item form (huh)
// ---------------------------------------------------------------------------

type itemFormInit struct {
	name       string
	amount     string
	accountID  string
	deductedAt string
}

func (a App) openItemForm(init itemFormInit) (tea.Model, tea.Cmd) {
	a.formKind = a.stepKind()
	a.editID = ""
	a.form = a.newItemForm(init)
	return a, a.form.Init()
}

func (a App) openEditForm(id string) (tea.Model, tea.Cmd) {
	init, ok := a.formInitFor(id)
	if !ok {
		return a, nil
	}
	a.formKind = a.stepKind()
	a.editID = id
	a.form = a.newItemForm(init)
	return a, a.form.Init()
}

func (a App) formInitFor(id string) (itemFormInit, bool) {
	switch a.stepKind() {
	case wizard.KindExpense:
		for _, it := range a.state.Expenses {
			if it.ID == id {
				return itemFormInit{
					name:       it.Name,
					amount:     trimAmount(it.Amount),
					accountID:  it.BankAccountID,
					deductedAt: it.DeductedAt,
				}, true
			}
		}
	case wizard.KindIncome:
		for _, it := range a.state.Income {
			if it.ID == id {
				return itemFormInit{name: it.Name, amount: trimAmount(it.Amount), accountID: it.BankAccountID}, true
			}
		}
	default:
		for _, it := range a.state.Savings {
			if it.ID == id {
				return itemFormInit{name: it.Name, amount: trimAmount(it.Amount), accountID: it.BankAccountID}, true
			}
		}
	}
	return itemFormInit{}, false
}

func trimAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var formTitles = map[wizard.Kind]string{
	wizard.KindIncome:  "Income source",
	wizard.KindExpense: "Expense",
	wizard.KindSavings: "Savings goal",
}

func (a App) newItemForm(init itemFormInit) *huh.Form {
	accountOpts := make([]huh.Option[string], len(a.accounts))
	for i, acc := range a.accounts {
		accountOpts[i] = huh.NewOption(acc.Name, acc.ID)
	}

	name := init.name
	amount := init.amount
	accountID := init.accountID
	deductedAt := init.deductedAt

	fields := []huh.Field{
		huh.NewInput().
			Title(formTitles[a.formKind]).
			Key("name").
			Value(&name).
			Placeholder("Name...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}),

		huh.NewInput().
			Title("Amount").
			Key("amount").
			Value(&amount).
			Placeholder("0.00").
			Validate(func(s string) error {
				v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					return errors.New("amount must be a number")
				}
				if v <= 0 {
					return errors.New("amount must be positive")
				}
				return nil
			}),

		huh.NewSelect[string]().
			Title("Account").
			Key("account").
			Options(accountOpts...).
			Value(&accountID),
	}

	if a.formKind == wizard.KindExpense {
		fields = append(fields, huh.NewInput().
			Title("Deducted on (optional)").
			Key("deducted").
			Value(&deductedAt).
			Placeholder("YYYY-MM-DD").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
					return errors.New("use YYYY-MM-DD")
				}
				return nil
			}))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(min(72, max(40, a.width-4))).
		WithShowHelp(false)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.applyItemForm()
		a.form = nil
		return a, nil
	case huh.StateAborted:
		a.form = nil
		return a, nil
	}
	return a, cmd
}

// applyItemForm turns the completed form into an Add or Update action.
func (a *App) applyItemForm() {
	name := strings.TrimSpace(a.form.GetString("name"))
	amount, _ := strconv.ParseFloat(strings.TrimSpace(a.form.GetString("amount")), 64)
	accountID := a.form.GetString("account")
	accountName := a.accountName(accountID)

	if a.editID != "" {
		patch := wizard.Patch{
			Name:            &name,
			Amount:          &amount,
			BankAccountID:   &accountID,
			BankAccountName: &accountName,
		}
		if a.formKind == wizard.KindExpense {
			deducted := strings.TrimSpace(a.form.GetString("deducted"))
			patch.DeductedAt = &deducted
		}
		a.dispatch(wizard.UpdateItem{Kind: a.formKind, ID: a.editID, Patch: patch})
		return
	}

	switch a.formKind {
	case wizard.KindIncome:
		a.dispatch(wizard.AddIncome{Item: budget.NewItem(name, amount, accountID, accountName)})
	case wizard.KindExpense:
		exp := budget.NewExpense(name, amount, accountID, accountName)
		exp.DeductedAt = strings.TrimSpace(a.form.GetString("deducted"))
		a.dispatch(wizard.AddExpense{Item: exp})
	case wizard.KindSavings:
		a.dispatch(wizard.AddSavings{Item: budget.NewItem(name, amount, accountID, accountName)})
	}
}

func (a App) accountName(id string) string {
	for _, acc := range a.accounts {
		if acc.ID == id {
			return acc.Name
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// Recurring-template quick-add picker
// ---------------------------------------------------------------------------

func (a App) updatePicker(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.pickCursor < len(a.recurring)-1 {
			a.pickCursor++
		}
	case "k", "up":
		if a.pickCursor > 0 {
			a.pickCursor--
		}
	case "esc", "q":
		a.picking = false
	case "enter":
		r := a.recurring[a.pickCursor]
		exp := budget.ExpenseItem{
			Item: budget.NewItem(r.Name, r.Amount, r.BankAccountID, a.accountName(r.BankAccountID)),
			// Not IsManual: the value came from a template.
			RecurringExpenseID: r.ID,
			DeductedAt:         deductionDate(r, a.state.Month, a.state.Year),
		}
		a.dispatch(wizard.AddExpense{Item: exp})
		a.picking = false
	}
	return a, nil
}

// deductionDate resolves a template's deduct-day against the budget
// month, clamping day 31 to shorter months. Empty when the template has
// no deduct day or no month is chosen yet.
func deductionDate(r api.RecurringExpense, month, year int) string {
	if r.DeductDay <= 0 || month == 0 || year == 0 {
		return ""
	}
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := r.DeductDay
	if day > lastDay {
		day = lastDay
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func (a App) renderPicker() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	sel := lipgloss.NewStyle().Foreground(t.Accent)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(label.Render("Add from a recurring expense"))
	b.WriteString("\n\n")
	for i, r := range a.recurring {
		line := fmt.Sprintf("%-24s %10s", r.Name, cli.FormatMoney(r.Amount))
		if i == a.pickCursor {
			b.WriteString(sel.Render("› " + line))
		} else {
			b.WriteString(dim.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

var stepHeadings = map[wizard.Kind]string{
	wizard.KindIncome:  "Where does the money come from?",
	wizard.KindExpense: "What goes out every month?",
	wizard.KindSavings: "What gets set aside?",
}

var stepEmptyText = map[wizard.Kind]string{
	wizard.KindIncome:  "No income sources yet. At least one is required.",
	wizard.KindExpense: "No expenses yet. This step is optional.",
	wizard.KindSavings: "No savings yet. This step is optional.",
}

func (a App) renderItemsStep() string {
	t := theme.Active
	kind := a.stepKind()
	rows := a.stepRows()

	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	sel := lipgloss.NewStyle().Foreground(t.Accent)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	warn := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder
	b.WriteString(label.Render(stepHeadings[kind]))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(dim.Render(stepEmptyText[kind]))
		b.WriteString("\n")
		return b.String()
	}

	var total float64
	for i, row := range rows {
		total += row.amount
		name := row.name
		if name == "" {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("%-24s %10s  %s", name, cli.FormatMoney(row.amount), row.account)
		if row.note != "" {
			line += dim.Render("  · " + row.note)
		}
		marker := "  "
		style := value
		if i == a.cursor {
			marker = "› "
			style = sel
		}
		b.WriteString(style.Render(marker + line))
		if !row.valid {
			b.WriteString(warn.Render("  ! incomplete"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(label.Render(fmt.Sprintf("Total: %s", cli.FormatMoney(total))))
	b.WriteString("\n")

	if !wizard.StepValid(a.state, a.state.Step) {
		b.WriteString(dim.Render("Complete every item to continue."))
		b.WriteString("\n")
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
