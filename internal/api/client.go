// Package api provides the client for the remote budget service: budgets,
// bank accounts, and recurring-expense templates.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"monthwise/internal/budget"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrUnauthorized indicates the API token is missing, expired, or invalid.
var ErrUnauthorized = errors.New("api: unauthorized (check your token)")

// Error is a rejection from the server. Its message is the server's own
// human-readable text, surfaced verbatim to the user.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Client talks to the budget service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given base URL and bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// ListBudgets returns all budgets known to the server.
func (c *Client) ListBudgets(ctx context.Context) ([]Budget, error) {
	body, err := c.do(ctx, http.MethodGet, "/budgets", nil)
	if err != nil {
		return nil, err
	}
	var budgets []Budget
	if err := json.Unmarshal(body, &budgets); err != nil {
		return nil, fmt.Errorf("api: parsing budgets: %w", err)
	}
	return budgets, nil
}

// ListAccounts returns the user's bank accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	body, err := c.do(ctx, http.MethodGet, "/accounts", nil)
	if err != nil {
		return nil, err
	}
	var accounts []Account
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, fmt.Errorf("api: parsing accounts: %w", err)
	}
	return accounts, nil
}

// ListRecurringExpenses returns the recurring-expense templates.
func (c *Client) ListRecurringExpenses(ctx context.Context) ([]RecurringExpense, error) {
	body, err := c.do(ctx, http.MethodGet, "/recurring-expenses", nil)
	if err != nil {
		return nil, err
	}
	var recurring []RecurringExpense
	if err := json.Unmarshal(body, &recurring); err != nil {
		return nil, fmt.Errorf("api: parsing recurring expenses: %w", err)
	}
	return recurring, nil
}

// CreateBudget creates an empty budget for the month and returns its
// server-assigned ID.
func (c *Client) CreateBudget(ctx context.Context, month, year int) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/budgets", createBudgetRequest{Month: month, Year: year})
	if err != nil {
		return "", err
	}
	var created Budget
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("api: parsing created budget: %w", err)
	}
	return created.ID, nil
}

// AddIncome adds an income item to the budget.
func (c *Client) AddIncome(ctx context.Context, budgetID string, it budget.Item) error {
	_, err := c.do(ctx, http.MethodPost, "/budgets/"+budgetID+"/income", itemRequest{
		Name:          it.Name,
		Amount:        it.Amount,
		BankAccountID: it.BankAccountID,
	})
	return err
}

// AddExpense adds an expense item to the budget.
func (c *Client) AddExpense(ctx context.Context, budgetID string, it budget.ExpenseItem) error {
	_, err := c.do(ctx, http.MethodPost, "/budgets/"+budgetID+"/expenses", expenseRequest{
		itemRequest: itemRequest{
			Name:          it.Name,
			Amount:        it.Amount,
			BankAccountID: it.BankAccountID,
		},
		IsManual:           it.IsManual,
		RecurringExpenseID: it.RecurringExpenseID,
		DeductedAt:         it.DeductedAt,
	})
	return err
}

// AddSavings adds a savings item to the budget.
func (c *Client) AddSavings(ctx context.Context, budgetID string, it budget.Item) error {
	_, err := c.do(ctx, http.MethodPost, "/budgets/"+budgetID+"/savings", itemRequest{
		Name:          it.Name,
		Amount:        it.Amount,
		BankAccountID: it.BankAccountID,
	})
	return err
}

// LockBudget finalizes the budget on the server.
func (c *Client) LockBudget(ctx context.Context, budgetID string) error {
	_, err := c.do(ctx, http.MethodPost, "/budgets/"+budgetID+"/lock", nil)
	return err
}

// do performs an authenticated request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &Error{Status: resp.StatusCode, Message: serverMessage(body, resp.StatusCode)}
	}

	return body, nil
}

// serverMessage extracts the server's human-readable error message,
// falling back to a generic one when the body isn't the expected shape.
func serverMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}
