// Package tui implements the interactive budget-creation wizard: five
// steps from month selection to review, driven by the wizard state store
// and saved through the sequential remote protocol.
package tui

import (
	"context"
	"time"

	"monthwise/internal/api"
	"monthwise/internal/budget"
	"monthwise/internal/store"
	"monthwise/internal/tui/components"
	"monthwise/internal/tui/theme"
	"monthwise/internal/wizard"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Service is the remote surface the wizard shell needs. *api.Client
// satisfies it.
type Service interface {
	wizard.Saver
	ListBudgets(ctx context.Context) ([]api.Budget, error)
	ListAccounts(ctx context.Context) ([]api.Account, error)
	ListRecurringExpenses(ctx context.Context) ([]api.RecurringExpense, error)
}

// refDataMsg carries the reference data the wizard needs before step 1.
type refDataMsg struct {
	budgets   []api.Budget
	accounts  []api.Account
	recurring []api.RecurringExpense
	fromCache bool
	err       error
}

// saveDoneMsg reports the outcome of the save protocol.
type saveDoneMsg struct {
	budgetID string
	err      error
}

// App is the root Bubble Tea model for the wizard.
type App struct {
	svc           Service
	cache         *store.Cache // nil when caching is disabled
	lockAfterSave bool

	// Single source of truth for the draft.
	state wizard.State

	// Reference data
	budgets    []api.Budget
	months     []budget.MonthYear
	mostRecent *budget.MonthYear
	accounts   []api.Account
	recurring  []api.RecurringExpense
	loaded     bool
	fromCache  bool
	loadErr    string

	// Step 1 working state: the candidate month under the cursor and the
	// inline validation message, which never touches wizard state.
	monthCand budget.MonthYear
	monthErr  string

	// Item entry form (steps 2-4). editID is set while editing in place.
	form     *huh.Form
	formKind wizard.Kind
	editID   string

	// Recurring-template quick-add picker (step 3).
	picking    bool
	pickCursor int

	cursor int // item cursor within the current step's collection

	confirmQuit bool
	done        bool
	createdID   string

	spinner spinner.Model
	width   int
	height  int
}

// NewApp creates the wizard shell. cache may be nil.
func NewApp(svc Service, cache *store.Cache, lockAfterSave bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		svc:           svc,
		cache:         cache,
		lockAfterSave: lockAfterSave,
		state:         wizard.NewState(),
		spinner:       sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, loadRefDataCmd(a.svc, a.cache))
}

// loadRefDataCmd fetches budgets, accounts, and recurring templates. The
// network is tried first; on failure the local cache backs the wizard so
// it can still start. A successful fetch refreshes the cache.
func loadRefDataCmd(svc Service, cache *store.Cache) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		budgets, err := svc.ListBudgets(ctx)
		if err != nil {
			if cache != nil {
				cached, cacheErr := cache.Budgets()
				accounts, _ := cache.Accounts()
				recurring, _ := cache.Recurring()
				if cacheErr == nil && len(cached) > 0 {
					return refDataMsg{budgets: cached, accounts: accounts, recurring: recurring, fromCache: true, err: err}
				}
			}
			return refDataMsg{err: err}
		}

		accounts, err := svc.ListAccounts(ctx)
		if err != nil {
			return refDataMsg{err: err}
		}
		recurring, err := svc.ListRecurringExpenses(ctx)
		if err != nil {
			return refDataMsg{err: err}
		}

		if cache != nil {
			_ = cache.ReplaceBudgets(budgets)
			_ = cache.ReplaceAccounts(accounts)
			_ = cache.ReplaceRecurring(recurring)
		}

		return refDataMsg{budgets: budgets, accounts: accounts, recurring: recurring}
	}
}

// saveCmd runs the save protocol off the UI goroutine.
func saveCmd(svc Service, s wizard.State, lock bool) tea.Cmd {
	return func() tea.Msg {
		id, err := wizard.Save(context.Background(), svc, s, lock)
		return saveDoneMsg{budgetID: id, err: err}
	}
}

// dispatch applies an action to the wizard state store.
func (a *App) dispatch(act wizard.Action) {
	a.state = wizard.Apply(a.state, act)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(72, msg.Width-4))
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded && !a.state.Submitting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case refDataMsg:
		return a.handleRefData(msg)

	case saveDoneMsg:
		return a.handleSaveDone(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Everything else (cursor blinks etc.) belongs to the active form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleRefData(msg refDataMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil && !msg.fromCache {
		a.loadErr = msg.err.Error()
		a.loaded = true
		return a, nil
	}

	a.budgets = msg.budgets
	a.accounts = msg.accounts
	a.recurring = msg.recurring
	a.fromCache = msg.fromCache
	a.months = api.Months(msg.budgets)
	a.mostRecent = budget.MostRecent(a.months)
	a.monthCand = budget.DefaultMonthYear(a.months, time.Now())
	a.loaded = true
	return a, nil
}

func (a App) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	a.dispatch(wizard.SetSubmitting{Submitting: false})
	if msg.err != nil {
		a.dispatch(wizard.SetError{Err: msg.err.Error()})
		return a, nil
	}
	a.createdID = msg.budgetID
	a.dispatch(wizard.Reset{})
	a.done = true
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ctrl+c always quits; the leave guard is best-effort, not a lock.
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// While the save protocol runs, navigation and resubmission are
	// disabled. This is the only mutual exclusion in the wizard.
	if a.state.Submitting {
		return a, nil
	}

	if a.done {
		switch key {
		case "enter", "q", "esc":
			return a, tea.Quit
		}
		return a, nil
	}

	if !a.loaded {
		return a, nil
	}

	if a.confirmQuit {
		switch key {
		case "y", "Y":
			return a, tea.Quit
		case "n", "N", "esc":
			a.confirmQuit = false
		}
		return a, nil
	}

	if a.form != nil {
		return a.updateForm(msg)
	}

	if a.picking {
		return a.updatePicker(key)
	}

	// Leave guard, only while there is something to lose.
	if key == "q" {
		if a.state.Dirty {
			a.confirmQuit = true
			return a, nil
		}
		return a, tea.Quit
	}

	// Jump to an already-visited step. Jumping ahead of validated
	// progress is refused here, not in the store.
	switch key {
	case "1", "2", "3", "4", "5":
		target := int(key[0] - '0')
		if wizard.CanGoTo(a.state, target) {
			a.dispatch(wizard.GoToStep{Step: target})
			a.cursor = 0
		}
		return a, nil
	}

	if key == "esc" || key == "left" {
		if a.state.Step > wizard.StepMonth {
			a.dispatch(wizard.PrevStep{})
			a.cursor = 0
		} else if a.state.Dirty {
			a.confirmQuit = true
		} else {
			return a, tea.Quit
		}
		return a, nil
	}

	switch a.state.Step {
	case wizard.StepMonth:
		return a.updateMonthStep(key)
	case wizard.StepIncome, wizard.StepExpenses, wizard.StepSavings:
		return a.updateItemsStep(key)
	case wizard.StepReview:
		return a.updateReviewStep(key)
	}
	return a, nil
}

// advance moves to the next step when the current gate is satisfied.
func (a App) advance() (tea.Model, tea.Cmd) {
	if !wizard.StepValid(a.state, a.state.Step) {
		return a, nil
	}
	a.dispatch(wizard.NextStep{})
	a.cursor = 0
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if !a.loaded {
		return "\n  " + a.spinner.View() + lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Contacting budget service...") + "\n"
	}
	if a.loadErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n  " + errStyle.Render("Could not reach the budget service: "+a.loadErr) + "\n\n  " +
			hint.Render("Check your connection and token, then try again.") + "\n"
	}
	if a.done {
		return a.renderDone()
	}

	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("New monthly budget")
	progress := components.ProgressBar(wizard.Progress(a.state), 30)

	var body string
	if a.form != nil {
		body = a.form.View()
	} else if a.picking {
		body = a.renderPicker()
	} else {
		switch a.state.Step {
		case wizard.StepMonth:
			body = a.renderMonthStep()
		case wizard.StepIncome, wizard.StepExpenses, wizard.StepSavings:
			body = a.renderItemsStep()
		case wizard.StepReview:
			body = a.renderReviewStep()
		}
	}

	steps := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2).
		Render(components.StepList(a.state))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		steps,
		lipgloss.NewStyle().Padding(0, 0, 0, 3).Render(body),
	)

	out := "\n  " + title + "   " + progress + "\n\n" +
		lipgloss.NewStyle().Padding(0, 2).Render(main) + "\n"

	if a.state.Err != "" {
		out += "\n  " + lipgloss.NewStyle().Foreground(t.Red).Render("✗ "+a.state.Err) + "\n"
	}
	if a.confirmQuit {
		out += "\n  " + lipgloss.NewStyle().Foreground(t.Yellow).Render("Discard this draft budget? (y/n)") + "\n"
	} else {
		out += "\n  " + lipgloss.NewStyle().Foreground(t.TextDim).Render(a.footerHint()) + "\n"
	}
	return out
}

func (a App) footerHint() string {
	if a.state.Submitting {
		return "saving..."
	}
	if a.form != nil {
		return "enter confirm · esc cancel"
	}
	switch a.state.Step {
	case wizard.StepMonth:
		return "j/k change month · enter confirm · q quit"
	case wizard.StepExpenses:
		return "a add · r from template · e edit · d delete · j/k move · enter continue · esc back"
	case wizard.StepReview:
		return "enter save · t toggle lock · 1-4 revisit a step · q quit"
	default:
		return "a add · e edit · d delete · j/k move · enter continue · esc back"
	}
}

func (a App) renderDone() string {
	t := theme.Active
	ok := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	return "\n  " + ok.Render("Budget created!") + "\n\n  " +
		muted.Render("Budget ID: "+a.createdID) + "\n\n  " +
		muted.Render("Press Enter to close.") + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
