package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"monthwise/internal/budget"
)

// fakeSaver records every call in order and fails the call whose label
// matches failOn.
type fakeSaver struct {
	calls  []string
	failOn string
	errMsg string
}

func (f *fakeSaver) call(label string) error {
	f.calls = append(f.calls, label)
	if label == f.failOn {
		return errors.New(f.errMsg)
	}
	return nil
}

func (f *fakeSaver) CreateBudget(_ context.Context, month, year int) (string, error) {
	if err := f.call(fmt.Sprintf("create %d/%d", month, year)); err != nil {
		return "", err
	}
	return "budget-1", nil
}

func (f *fakeSaver) AddIncome(_ context.Context, budgetID string, it budget.Item) error {
	return f.call("income " + it.Name + " -> " + budgetID)
}

func (f *fakeSaver) AddExpense(_ context.Context, budgetID string, it budget.ExpenseItem) error {
	return f.call("expense " + it.Name + " -> " + budgetID)
}

func (f *fakeSaver) AddSavings(_ context.Context, budgetID string, it budget.Item) error {
	return f.call("savings " + it.Name + " -> " + budgetID)
}

func (f *fakeSaver) LockBudget(_ context.Context, budgetID string) error {
	return f.call("lock " + budgetID)
}

func draftState() State {
	s := NewState()
	s = Apply(s, SetMonthYear{Month: 4, Year: 2025})
	s = Apply(s, AddIncome{Item: item("a", "Salary", 3000)})
	return s
}

func TestSaveOrderSingleIncome(t *testing.T) {
	f := &fakeSaver{}
	id, err := Save(context.Background(), f, draftState(), false)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id != "budget-1" {
		t.Fatalf("budget id = %q, want budget-1", id)
	}

	want := []string{"create 4/2025", "income Salary -> budget-1"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, f.calls[i], want[i])
		}
	}
}

func TestSaveFullOrderWithLock(t *testing.T) {
	s := draftState()
	s = Apply(s, AddExpense{Item: expense("e", "Rent", 900)})
	s = Apply(s, AddSavings{Item: item("s", "Fund", 2100)})
	if s.Balance() != 0 {
		t.Fatalf("draft should balance, got %v", s.Balance())
	}

	f := &fakeSaver{}
	if _, err := Save(context.Background(), f, s, true); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	want := []string{
		"create 4/2025",
		"income Salary -> budget-1",
		"expense Rent -> budget-1",
		"savings Fund -> budget-1",
		"lock budget-1",
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %v)", i, f.calls[i], want[i], f.calls)
		}
	}
}

func TestSaveSkipsLockWhenUnbalanced(t *testing.T) {
	s := draftState()
	s = Apply(s, AddExpense{Item: expense("e", "Rent", 900)})

	f := &fakeSaver{}
	if _, err := Save(context.Background(), f, s, true); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	for _, c := range f.calls {
		if c == "lock budget-1" {
			t.Fatalf("lock issued for unbalanced draft: %v", f.calls)
		}
	}
}

func TestSaveCreateFailureStopsEverything(t *testing.T) {
	f := &fakeSaver{failOn: "create 4/2025", errMsg: "Budget already exists for this month"}
	id, err := Save(context.Background(), f, draftState(), false)
	if err == nil {
		t.Fatal("Save should fail when create fails")
	}
	if id != "" {
		t.Fatalf("budget id = %q, want empty on create failure", id)
	}
	if len(f.calls) != 1 {
		t.Fatalf("calls after create failure = %v, want just the create", f.calls)
	}
}

func TestSaveFailFastMidIncome(t *testing.T) {
	s := draftState()
	s = Apply(s, AddIncome{Item: item("b", "Side gig", 400)})
	s = Apply(s, AddIncome{Item: item("c", "Dividends", 50)})
	s = Apply(s, AddExpense{Item: expense("e", "Rent", 900)})

	f := &fakeSaver{failOn: "income Side gig -> budget-1", errMsg: "account not found"}
	id, err := Save(context.Background(), f, s, true)
	if err == nil {
		t.Fatal("Save should surface the failing call's error")
	}
	if err.Error() != "account not found" {
		t.Fatalf("error = %q, want the remote message verbatim", err)
	}
	if id != "budget-1" {
		t.Fatalf("budget id = %q, want budget-1 so the caller sees the partial save", id)
	}

	want := []string{"create 4/2025", "income Salary -> budget-1", "income Side gig -> budget-1"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want exactly %v", f.calls, want)
	}
}
