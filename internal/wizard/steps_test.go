package wizard

import (
	"testing"

	"monthwise/internal/budget"
)

func TestStepValidMonth(t *testing.T) {
	s := NewState()
	if StepValid(s, StepMonth) {
		t.Fatal("month step valid without a month")
	}
	s = Apply(s, SetMonthYear{Month: 4, Year: 2025})
	if !StepValid(s, StepMonth) {
		t.Fatal("month step invalid after SetMonthYear")
	}
}

func TestStepValidIncome(t *testing.T) {
	s := NewState()
	if StepValid(s, StepIncome) {
		t.Fatal("income step must be invalid with no items")
	}

	// Other collections never compensate for missing income.
	s = Apply(s, AddExpense{Item: expense("e", "Rent", 900)})
	s = Apply(s, AddSavings{Item: item("s", "Fund", 100)})
	if StepValid(s, StepIncome) {
		t.Fatal("income step valid despite empty income collection")
	}

	s = Apply(s, AddIncome{Item: item("a", "Salary", 3000)})
	if !StepValid(s, StepIncome) {
		t.Fatal("income step invalid with one valid item")
	}

	s = Apply(s, AddIncome{Item: budget.Item{ID: "b", Name: "Incomplete"}})
	if StepValid(s, StepIncome) {
		t.Fatal("income step valid with an incomplete item present")
	}
}

func TestStepValidOptionalCollections(t *testing.T) {
	s := NewState()
	if !StepValid(s, StepExpenses) {
		t.Fatal("empty expenses must be valid")
	}
	if !StepValid(s, StepSavings) {
		t.Fatal("empty savings must be valid")
	}

	s = Apply(s, AddExpense{Item: budget.ExpenseItem{Item: budget.Item{ID: "e", Name: "Rent"}}})
	if StepValid(s, StepExpenses) {
		t.Fatal("expenses step valid with an incomplete item")
	}

	s = Apply(s, AddSavings{Item: item("s", "Fund", 100)})
	if !StepValid(s, StepSavings) {
		t.Fatal("savings step invalid with one valid item")
	}
}

func TestStepValidReview(t *testing.T) {
	if !StepValid(NewState(), StepReview) {
		t.Fatal("review step should always be valid")
	}
}

func TestStepStatusReflectsPositionOnly(t *testing.T) {
	s := Apply(NewState(), GoToStep{Step: 3})

	want := map[int]StepStatusKind{
		1: StatusComplete,
		2: StatusComplete,
		3: StatusCurrent,
		4: StatusUpcoming,
		5: StatusUpcoming,
	}
	for step, status := range want {
		if got := StepStatus(s, step); got != status {
			t.Fatalf("StepStatus(step %d) = %v, want %v", step, got, status)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		step int
		want float64
	}{
		{1, 0.0},
		{2, 0.2},
		{3, 0.4},
		{4, 0.6},
		{5, 1.0}, // reaching review counts the final 20% too
	}
	for _, tt := range tests {
		s := Apply(NewState(), GoToStep{Step: tt.step})
		if got := Progress(s); got != tt.want {
			t.Fatalf("Progress at step %d = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestCanGoTo(t *testing.T) {
	s := Apply(NewState(), GoToStep{Step: 3})

	for _, step := range []int{1, 2, 3} {
		if !CanGoTo(s, step) {
			t.Fatalf("jump back to step %d refused", step)
		}
	}
	for _, step := range []int{4, 5} {
		if CanGoTo(s, step) {
			t.Fatalf("jump ahead to step %d allowed", step)
		}
	}
	if CanGoTo(s, 0) {
		t.Fatal("jump to step 0 allowed")
	}
}
