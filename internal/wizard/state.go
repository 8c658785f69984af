// Package wizard implements the budget-creation wizard: a reducer-driven
// state store for the in-progress draft, per-step validity gates, and the
// sequential save protocol that persists the draft through the remote API.
package wizard

import "monthwise/internal/budget"

// Wizard steps, in order.
const (
	StepMonth    = 1
	StepIncome   = 2
	StepExpenses = 3
	StepSavings  = 4
	StepReview   = 5

	StepCount = 5
)

// State is the draft budget plus wizard position. It is owned by whoever
// runs the wizard session and changes only through Apply; holders of an
// older State value never observe later mutations.
type State struct {
	Step int // 1..StepCount

	// Month and Year are zero until step 1 completes.
	Month int
	Year  int

	Income   []budget.Item
	Expenses []budget.ExpenseItem
	Savings  []budget.Item

	Dirty      bool // any mutating action applied; gates the leave warning
	Submitting bool
	Err        string
}

// NewState returns the initial empty wizard state.
func NewState() State {
	return State{Step: StepMonth}
}

// HasMonth reports whether step 1 has produced a month/year choice.
func (s State) HasMonth() bool {
	return s.Month != 0 && s.Year != 0
}

// IncomeTotal sums all income amounts in the draft.
func (s State) IncomeTotal() float64 {
	var total float64
	for _, it := range s.Income {
		total += it.Amount
	}
	return total
}

// ExpenseTotal sums all expense amounts in the draft.
func (s State) ExpenseTotal() float64 {
	var total float64
	for _, it := range s.Expenses {
		total += it.Amount
	}
	return total
}

// SavingsTotal sums all savings amounts in the draft.
func (s State) SavingsTotal() float64 {
	var total float64
	for _, it := range s.Savings {
		total += it.Amount
	}
	return total
}

// Balance is income minus expenses minus savings. A draft is balanced
// when this is exactly zero; only balanced budgets may be locked on save.
func (s State) Balance() float64 {
	return s.IncomeTotal() - s.ExpenseTotal() - s.SavingsTotal()
}
