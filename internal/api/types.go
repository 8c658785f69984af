package api

import "monthwise/internal/budget"

// Budget statuses reported by the server.
const (
	StatusUnlocked = "unlocked"
	StatusLocked   = "locked"
)

// Budget is a monthly budget as listed by the server.
type Budget struct {
	ID     string `json:"id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	Status string `json:"status"`
}

// Account is a bank account usable for budget items.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecurringExpense is a template for quick-adding expense items.
type RecurringExpense struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	BankAccountID string  `json:"bankAccountId"`
	DeductDay     int     `json:"deductDay,omitempty"` // day of month, 0 when unset
}

// itemRequest is the outbound payload for income and savings items. The
// client-side item ID is deliberately absent; the server assigns its own.
type itemRequest struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	BankAccountID string  `json:"bankAccountId"`
}

// expenseRequest adds the expense-only fields.
type expenseRequest struct {
	itemRequest
	IsManual           bool   `json:"isManual"`
	RecurringExpenseID string `json:"recurringExpenseId,omitempty"`
	DeductedAt         string `json:"deductedAt,omitempty"`
}

type createBudgetRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Months projects a budget list onto the pure month-selection domain.
func Months(budgets []Budget) []budget.MonthYear {
	out := make([]budget.MonthYear, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, budget.MonthYear{Month: b.Month, Year: b.Year})
	}
	return out
}

// HasUnlocked reports whether any listed budget is still unlocked.
func HasUnlocked(budgets []Budget) bool {
	for _, b := range budgets {
		if b.Status == StatusUnlocked {
			return true
		}
	}
	return false
}
