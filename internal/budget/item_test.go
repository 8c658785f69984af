package budget

import "testing"

func TestItemValid(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"complete", Item{Name: "Salary", Amount: 3200, BankAccountID: "acc-1"}, true},
		{"blank name", Item{Name: "", Amount: 3200, BankAccountID: "acc-1"}, false},
		{"whitespace name", Item{Name: "   ", Amount: 3200, BankAccountID: "acc-1"}, false},
		{"zero amount", Item{Name: "Salary", Amount: 0, BankAccountID: "acc-1"}, false},
		{"negative amount", Item{Name: "Salary", Amount: -5, BankAccountID: "acc-1"}, false},
		{"no account", Item{Name: "Salary", Amount: 3200, BankAccountID: ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Valid(); got != tt.want {
				t.Fatalf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpenseValidIgnoresManualFlag(t *testing.T) {
	base := Item{Name: "Rent", Amount: 900, BankAccountID: "acc-1"}
	for _, manual := range []bool{true, false} {
		e := ExpenseItem{Item: base, IsManual: manual}
		if !e.Valid() {
			t.Fatalf("expense with IsManual=%v reported invalid", manual)
		}
	}
}

func TestNewItemGeneratesUniqueIDs(t *testing.T) {
	a := NewItem("A", 1, "acc", "Acc")
	b := NewItem("B", 2, "acc", "Acc")
	if a.ID == "" || b.ID == "" {
		t.Fatal("NewItem produced an empty ID")
	}
	if a.ID == b.ID {
		t.Fatalf("NewItem produced duplicate ID %q", a.ID)
	}
}
