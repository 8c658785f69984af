package wizard

import "monthwise/internal/budget"

// Kind names one of the three item collections in the draft.
type Kind int

const (
	KindIncome Kind = iota
	KindExpense
	KindSavings
)

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "income"
	case KindExpense:
		return "expense"
	case KindSavings:
		return "savings"
	default:
		return "unknown"
	}
}

// Action is the closed set of wizard state transitions. Every action is
// total: Apply never fails, out-of-range inputs are clamped or ignored.
type Action interface{ isAction() }

// SetMonthYear records the month/year choice from step 1.
type SetMonthYear struct {
	Month int
	Year  int
}

// SetIncome replaces the income collection wholesale (bulk hydration).
type SetIncome struct{ Items []budget.Item }

// SetExpenses replaces the expense collection wholesale.
type SetExpenses struct{ Items []budget.ExpenseItem }

// SetSavings replaces the savings collection wholesale.
type SetSavings struct{ Items []budget.Item }

// AddIncome appends an income item.
type AddIncome struct{ Item budget.Item }

// AddExpense appends an expense item.
type AddExpense struct{ Item budget.ExpenseItem }

// AddSavings appends a savings item.
type AddSavings struct{ Item budget.Item }

// UpdateItem merges a patch into the item with the given ID in the named
// collection. A miss is a no-op.
type UpdateItem struct {
	Kind  Kind
	ID    string
	Patch Patch
}

// RemoveItem deletes the item with the given ID from the named
// collection. A miss is a no-op.
type RemoveItem struct {
	Kind Kind
	ID   string
}

// NextStep advances one step, clamped to StepCount.
type NextStep struct{}

// PrevStep goes back one step, clamped to step 1.
type PrevStep struct{}

// GoToStep jumps to a step, clamped to [1, StepCount]. Gating jumps to
// not-yet-visited steps is the caller's job, not the store's.
type GoToStep struct{ Step int }

// SetSubmitting flips the submission-in-flight flag.
type SetSubmitting struct{ Submitting bool }

// SetError records or clears the submission error message.
type SetError struct{ Err string }

// Reset discards the draft and returns to the initial state.
type Reset struct{}

func (SetMonthYear) isAction()  {}
func (SetIncome) isAction()     {}
func (SetExpenses) isAction()   {}
func (SetSavings) isAction()    {}
func (AddIncome) isAction()     {}
func (AddExpense) isAction()    {}
func (AddSavings) isAction()    {}
func (UpdateItem) isAction()    {}
func (RemoveItem) isAction()    {}
func (NextStep) isAction()      {}
func (PrevStep) isAction()      {}
func (GoToStep) isAction()      {}
func (SetSubmitting) isAction() {}
func (SetError) isAction()      {}
func (Reset) isAction()         {}

// Patch holds optional per-field updates for UpdateItem. Nil fields are
// left untouched. The expense-only fields are ignored for income and
// savings items.
type Patch struct {
	Name            *string
	Amount          *float64
	BankAccountID   *string
	BankAccountName *string

	IsManual           *bool
	RecurringExpenseID *string
	DeductedAt         *string
}

func (p Patch) applyItem(it budget.Item) budget.Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Amount != nil {
		it.Amount = *p.Amount
	}
	if p.BankAccountID != nil {
		it.BankAccountID = *p.BankAccountID
	}
	if p.BankAccountName != nil {
		it.BankAccountName = *p.BankAccountName
	}
	return it
}

func (p Patch) applyExpense(it budget.ExpenseItem) budget.ExpenseItem {
	it.Item = p.applyItem(it.Item)
	if p.IsManual != nil {
		it.IsManual = *p.IsManual
	}
	if p.RecurringExpenseID != nil {
		it.RecurringExpenseID = *p.RecurringExpenseID
	}
	if p.DeductedAt != nil {
		it.DeductedAt = *p.DeductedAt
	}
	return it
}

// Apply is the wizard reducer. It is pure: the input state is never
// mutated, and the same state and action always produce the same result.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case SetMonthYear:
		s.Month, s.Year = a.Month, a.Year
		s.Dirty = true

	case SetIncome:
		s.Income = cloneItems(a.Items)

	case SetExpenses:
		s.Expenses = cloneExpenses(a.Items)

	case SetSavings:
		s.Savings = cloneItems(a.Items)

	case AddIncome:
		s.Income = append(cloneItems(s.Income), a.Item)
		s.Dirty = true

	case AddExpense:
		s.Expenses = append(cloneExpenses(s.Expenses), a.Item)
		s.Dirty = true

	case AddSavings:
		s.Savings = append(cloneItems(s.Savings), a.Item)
		s.Dirty = true

	case UpdateItem:
		switch a.Kind {
		case KindIncome:
			s.Income = patchItems(s.Income, a.ID, a.Patch)
		case KindExpense:
			s.Expenses = patchExpenses(s.Expenses, a.ID, a.Patch)
		case KindSavings:
			s.Savings = patchItems(s.Savings, a.ID, a.Patch)
		}
		s.Dirty = true

	case RemoveItem:
		switch a.Kind {
		case KindIncome:
			s.Income = removeItem(s.Income, a.ID)
		case KindExpense:
			s.Expenses = removeExpense(s.Expenses, a.ID)
		case KindSavings:
			s.Savings = removeItem(s.Savings, a.ID)
		}
		s.Dirty = true

	case NextStep:
		s.Step = clampStep(s.Step + 1)

	case PrevStep:
		s.Step = clampStep(s.Step - 1)

	case GoToStep:
		s.Step = clampStep(a.Step)

	case SetSubmitting:
		s.Submitting = a.Submitting

	case SetError:
		s.Err = a.Err

	case Reset:
		s = NewState()
	}
	return s
}

func clampStep(step int) int {
	if step < StepMonth {
		return StepMonth
	}
	if step > StepCount {
		return StepCount
	}
	return step
}

func cloneItems(items []budget.Item) []budget.Item {
	if items == nil {
		return nil
	}
	out := make([]budget.Item, len(items))
	copy(out, items)
	return out
}

func cloneExpenses(items []budget.ExpenseItem) []budget.ExpenseItem {
	if items == nil {
		return nil
	}
	out := make([]budget.ExpenseItem, len(items))
	copy(out, items)
	return out
}

func patchItems(items []budget.Item, id string, p Patch) []budget.Item {
	out := cloneItems(items)
	for i := range out {
		if out[i].ID == id {
			out[i] = p.applyItem(out[i])
			break
		}
	}
	return out
}

func patchExpenses(items []budget.ExpenseItem, id string, p Patch) []budget.ExpenseItem {
	out := cloneExpenses(items)
	for i := range out {
		if out[i].ID == id {
			out[i] = p.applyExpense(out[i])
			break
		}
	}
	return out
}

func removeItem(items []budget.Item, id string) []budget.Item {
	out := make([]budget.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func removeExpense(items []budget.ExpenseItem, id string) []budget.ExpenseItem {
	out := make([]budget.ExpenseItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
