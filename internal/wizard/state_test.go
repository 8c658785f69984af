package wizard

import (
	"reflect"
	"testing"

	"monthwise/internal/budget"
)

func item(id, name string, amount float64) budget.Item {
	return budget.Item{ID: id, Name: name, Amount: amount, BankAccountID: "acc-1", BankAccountName: "Main"}
}

func expense(id, name string, amount float64) budget.ExpenseItem {
	return budget.ExpenseItem{Item: item(id, name, amount), IsManual: true}
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Step != StepMonth {
		t.Fatalf("Step = %d, want %d", s.Step, StepMonth)
	}
	if s.HasMonth() {
		t.Fatal("fresh state should have no month")
	}
	if s.Dirty || s.Submitting || s.Err != "" {
		t.Fatalf("fresh state carries lifecycle flags: %+v", s)
	}
}

func TestSetMonthYearMarksDirty(t *testing.T) {
	s := Apply(NewState(), SetMonthYear{Month: 4, Year: 2025})
	if s.Month != 4 || s.Year != 2025 {
		t.Fatalf("month/year = %d/%d, want 4/2025", s.Month, s.Year)
	}
	if !s.Dirty {
		t.Fatal("SetMonthYear should mark state dirty")
	}
}

func TestAddItemAppendsInOrder(t *testing.T) {
	s := NewState()
	s = Apply(s, AddIncome{Item: item("a", "Salary", 3000)})
	s = Apply(s, AddIncome{Item: item("b", "Side gig", 400)})
	if len(s.Income) != 2 {
		t.Fatalf("income length = %d, want 2", len(s.Income))
	}
	if s.Income[0].ID != "a" || s.Income[1].ID != "b" {
		t.Fatalf("insertion order not preserved: %v, %v", s.Income[0].ID, s.Income[1].ID)
	}
	if !s.Dirty {
		t.Fatal("AddIncome should mark state dirty")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	base := Apply(NewState(), AddIncome{Item: item("a", "Salary", 3000)})
	snapshot := base.Income[0]

	name := "Renamed"
	_ = Apply(base, UpdateItem{Kind: KindIncome, ID: "a", Patch: Patch{Name: &name}})
	_ = Apply(base, RemoveItem{Kind: KindIncome, ID: "a"})
	_ = Apply(base, AddIncome{Item: item("b", "Other", 10)})

	if len(base.Income) != 1 || base.Income[0] != snapshot {
		t.Fatalf("input state was mutated: %+v", base.Income)
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	base := Apply(NewState(), AddExpense{Item: expense("e1", "Rent", 900)})
	amount := 950.0
	act := UpdateItem{Kind: KindExpense, ID: "e1", Patch: Patch{Amount: &amount}}

	first := Apply(base, act)
	second := Apply(base, act)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same action produced different states:\n%+v\n%+v", first, second)
	}
}

func TestUpdateItemPatchesFields(t *testing.T) {
	s := Apply(NewState(), AddExpense{Item: expense("e1", "Rent", 900)})
	amount := 950.0
	deducted := "2025-04-01"
	manual := false
	s = Apply(s, UpdateItem{Kind: KindExpense, ID: "e1", Patch: Patch{
		Amount:     &amount,
		DeductedAt: &deducted,
		IsManual:   &manual,
	}})

	got := s.Expenses[0]
	if got.Amount != 950 || got.DeductedAt != "2025-04-01" || got.IsManual {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Name != "Rent" {
		t.Fatalf("untouched field changed: name = %q", got.Name)
	}
}

func TestUpdateItemMissingIDIsNoOp(t *testing.T) {
	base := Apply(NewState(), AddIncome{Item: item("a", "Salary", 3000)})
	name := "Ghost"
	s := Apply(base, UpdateItem{Kind: KindIncome, ID: "nope", Patch: Patch{Name: &name}})
	if !reflect.DeepEqual(s.Income, base.Income) {
		t.Fatalf("update with missing id changed the collection: %+v", s.Income)
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewState()
	s = Apply(s, AddSavings{Item: item("s1", "Emergency fund", 200)})
	s = Apply(s, AddSavings{Item: item("s2", "Holiday", 100)})

	s = Apply(s, RemoveItem{Kind: KindSavings, ID: "s1"})
	if len(s.Savings) != 1 || s.Savings[0].ID != "s2" {
		t.Fatalf("remove failed: %+v", s.Savings)
	}

	// Missing ID is a no-op.
	s = Apply(s, RemoveItem{Kind: KindSavings, ID: "nope"})
	if len(s.Savings) != 1 {
		t.Fatalf("remove of missing id changed the collection: %+v", s.Savings)
	}
}

func TestSetCollectionsReplaceWholesale(t *testing.T) {
	s := Apply(NewState(), AddIncome{Item: item("a", "Salary", 3000)})
	s = Apply(s, SetIncome{Items: []budget.Item{item("x", "Pension", 1200)}})
	if len(s.Income) != 1 || s.Income[0].ID != "x" {
		t.Fatalf("SetIncome did not replace the collection: %+v", s.Income)
	}
}

func TestStepNavigationClamps(t *testing.T) {
	s := NewState()

	s = Apply(s, PrevStep{})
	if s.Step != 1 {
		t.Fatalf("PrevStep below 1 gave %d", s.Step)
	}

	for i := 0; i < 10; i++ {
		s = Apply(s, NextStep{})
	}
	if s.Step != StepCount {
		t.Fatalf("NextStep past %d gave %d", StepCount, s.Step)
	}

	for _, target := range []int{-3, 0, 1, 3, 5, 6, 99} {
		got := Apply(s, GoToStep{Step: target}).Step
		if got < 1 || got > StepCount {
			t.Fatalf("GoToStep(%d) left step out of range: %d", target, got)
		}
	}
}

func TestLifecycleFlags(t *testing.T) {
	s := Apply(NewState(), SetSubmitting{Submitting: true})
	if !s.Submitting {
		t.Fatal("SetSubmitting(true) not applied")
	}
	s = Apply(s, SetError{Err: "boom"})
	if s.Err != "boom" {
		t.Fatalf("Err = %q, want boom", s.Err)
	}
	s = Apply(s, SetError{})
	if s.Err != "" {
		t.Fatalf("clearing error left %q", s.Err)
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	s = Apply(s, SetMonthYear{Month: 4, Year: 2025})
	s = Apply(s, AddIncome{Item: item("a", "Salary", 3000)})
	s = Apply(s, NextStep{})
	s = Apply(s, SetError{Err: "boom"})

	s = Apply(s, Reset{})
	if !reflect.DeepEqual(s, NewState()) {
		t.Fatalf("Reset did not restore the initial state: %+v", s)
	}
}

func TestBalance(t *testing.T) {
	s := NewState()
	s = Apply(s, AddIncome{Item: item("a", "Salary", 3000)})
	s = Apply(s, AddExpense{Item: expense("e", "Rent", 900)})
	s = Apply(s, AddSavings{Item: item("s", "Fund", 2100)})
	if got := s.Balance(); got != 0 {
		t.Fatalf("Balance = %v, want 0", got)
	}
	s = Apply(s, RemoveItem{Kind: KindSavings, ID: "s"})
	if got := s.Balance(); got != 2100 {
		t.Fatalf("Balance = %v, want 2100", got)
	}
}
