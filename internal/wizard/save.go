package wizard

import (
	"context"

	"monthwise/internal/budget"
)

// Saver is the remote surface the save protocol needs. *api.Client
// satisfies it; tests substitute a scripted fake.
type Saver interface {
	CreateBudget(ctx context.Context, month, year int) (string, error)
	AddIncome(ctx context.Context, budgetID string, it budget.Item) error
	AddExpense(ctx context.Context, budgetID string, it budget.ExpenseItem) error
	AddSavings(ctx context.Context, budgetID string, it budget.Item) error
	LockBudget(ctx context.Context, budgetID string) error
}

// Save runs the submission protocol for a finished draft: create the
// budget, then add every income, expense, and savings item in collection
// order, then lock if requested and the draft balances to exactly zero.
// Calls are strictly sequential and the first failure stops the run.
//
// There is no rollback. If item creation or locking fails, the budget and
// any items added so far stay persisted remotely; the returned budget ID
// is non-empty in that case so the caller can tell a partial save from a
// failed create. Retrying re-runs the whole protocol from the create,
// which the server may reject as a duplicate month.
//
// The caller owns the Submitting/Err lifecycle flags; Save itself never
// touches wizard state.
func Save(ctx context.Context, remote Saver, s State, lockAfterSave bool) (string, error) {
	budgetID, err := remote.CreateBudget(ctx, s.Month, s.Year)
	if err != nil {
		return "", err
	}

	for _, it := range s.Income {
		if err := remote.AddIncome(ctx, budgetID, it); err != nil {
			return budgetID, err
		}
	}
	for _, it := range s.Expenses {
		if err := remote.AddExpense(ctx, budgetID, it); err != nil {
			return budgetID, err
		}
	}
	for _, it := range s.Savings {
		if err := remote.AddSavings(ctx, budgetID, it); err != nil {
			return budgetID, err
		}
	}

	if lockAfterSave && s.Balance() == 0 {
		if err := remote.LockBudget(ctx, budgetID); err != nil {
			return budgetID, err
		}
	}

	return budgetID, nil
}
