// Package budget holds the domain types and pure rules for monthly budgets:
// line items, item validity, and month selection for new budgets.
package budget

import (
	"strings"

	"github.com/google/uuid"
)

// Item is a single income or savings line in a draft budget.
// ID is generated client-side and never sent to the server; the server
// assigns its own identifier when the item is created remotely.
type Item struct {
	ID              string
	Name            string
	Amount          float64
	BankAccountID   string
	BankAccountName string // display cache, not authoritative
}

// ExpenseItem is an expense line. It carries the same core fields plus
// expense-only metadata.
type ExpenseItem struct {
	Item
	IsManual           bool
	RecurringExpenseID string // provenance link when quick-added from a template
	DeductedAt         string // optional deduction date, YYYY-MM-DD
}

// NewItem creates an item with a fresh client-side ID.
func NewItem(name string, amount float64, accountID, accountName string) Item {
	return Item{
		ID:              uuid.NewString(),
		Name:            name,
		Amount:          amount,
		BankAccountID:   accountID,
		BankAccountName: accountName,
	}
}

// NewExpense creates a manual expense item with a fresh client-side ID.
func NewExpense(name string, amount float64, accountID, accountName string) ExpenseItem {
	return ExpenseItem{
		Item:     NewItem(name, amount, accountID, accountName),
		IsManual: true,
	}
}

// Valid reports whether the item is complete enough to count toward step
// validity and be submitted: non-blank name, positive amount, an account
// selected. Amount may sit at zero while the user is still editing.
func (it Item) Valid() bool {
	return strings.TrimSpace(it.Name) != "" && it.Amount > 0 && it.BankAccountID != ""
}
