package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"monthwise/internal/budget"
)

func TestCreateBudgetSendsMonthYear(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		_ = json.NewEncoder(w).Encode(Budget{ID: "b-42", Month: 4, Year: 2025, Status: StatusUnlocked})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	id, err := c.CreateBudget(context.Background(), 4, 2025)
	if err != nil {
		t.Fatalf("CreateBudget failed: %v", err)
	}
	if id != "b-42" {
		t.Fatalf("budget id = %q, want b-42", id)
	}
	if gotPath != "POST /budgets" {
		t.Fatalf("request = %q, want POST /budgets", gotPath)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotBody["month"] != float64(4) || gotBody["year"] != float64(2025) {
		t.Fatalf("payload = %v", gotBody)
	}
}

func TestAddIncomeDropsClientID(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"srv-1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	it := budget.NewItem("Salary", 3000, "acc-1", "Main")
	if err := c.AddIncome(context.Background(), "b-42", it); err != nil {
		t.Fatalf("AddIncome failed: %v", err)
	}

	if _, ok := gotBody["id"]; ok {
		t.Fatalf("client-side id leaked into payload: %v", gotBody)
	}
	if gotBody["name"] != "Salary" || gotBody["amount"] != float64(3000) || gotBody["bankAccountId"] != "acc-1" {
		t.Fatalf("payload = %v", gotBody)
	}
	if _, ok := gotBody["bankAccountName"]; ok {
		t.Fatalf("display-only account name leaked into payload: %v", gotBody)
	}
}

func TestAddExpenseIncludesVariantFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		_, _ = w.Write([]byte(`{"id":"srv-1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	exp := budget.ExpenseItem{
		Item:               budget.NewItem("Rent", 900, "acc-1", "Main"),
		IsManual:           false,
		RecurringExpenseID: "rec-7",
		DeductedAt:         "2025-04-01",
	}
	if err := c.AddExpense(context.Background(), "b-42", exp); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if gotBody["isManual"] != false {
		t.Fatalf("isManual missing or wrong: %v", gotBody)
	}
	if gotBody["recurringExpenseId"] != "rec-7" || gotBody["deductedAt"] != "2025-04-01" {
		t.Fatalf("payload = %v", gotBody)
	}
}

func TestServerMessageSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Budget already exists for this month"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.CreateBudget(context.Background(), 4, 2025)
	if err == nil {
		t.Fatal("expected an error for 409")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Message != "Budget already exists for this month" {
		t.Fatalf("message = %q, want the server text verbatim", apiErr.Message)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("status = %d, want 409", apiErr.Status)
	}
}

func TestUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad")
	if _, err := c.ListBudgets(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestHasUnlockedAndMonths(t *testing.T) {
	budgets := []Budget{
		{ID: "a", Month: 1, Year: 2025, Status: StatusLocked},
		{ID: "b", Month: 3, Year: 2025, Status: StatusUnlocked},
	}
	if !HasUnlocked(budgets) {
		t.Fatal("HasUnlocked = false, want true")
	}
	if HasUnlocked(budgets[:1]) {
		t.Fatal("HasUnlocked over locked-only list = true, want false")
	}

	months := Months(budgets)
	if len(months) != 2 || months[1] != (budget.MonthYear{Month: 3, Year: 2025}) {
		t.Fatalf("Months = %v", months)
	}
}
