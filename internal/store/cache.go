// Package store provides a SQLite-backed cache of reference data fetched
// from the budget service, so listings and wizard startup don't block on
// the network every run. It is a read cache only; nothing written locally
// is ever pushed back to the server.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"monthwise/internal/api"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed reference-data caching.
type Cache struct {
	db *sql.DB
}

// DefaultPath returns the cache location under the XDG cache directory.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "monthwise", "cache.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "monthwise", "cache.db")
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// ReplaceBudgets swaps the cached budget list for a fresh fetch.
func (c *Cache) ReplaceBudgets(budgets []api.Budget) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM budgets"); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, b := range budgets {
		_, err := tx.Exec(`INSERT INTO budgets (id, month, year, status, fetched_at)
			VALUES (?, ?, ?, ?, ?)`, b.ID, b.Month, b.Year, b.Status, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Budgets reads the cached budget list, most recent month first.
func (c *Cache) Budgets() ([]api.Budget, error) {
	rows, err := c.db.Query("SELECT id, month, year, status FROM budgets ORDER BY year DESC, month DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var budgets []api.Budget
	for rows.Next() {
		var b api.Budget
		if err := rows.Scan(&b.ID, &b.Month, &b.Year, &b.Status); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// ReplaceAccounts swaps the cached account list for a fresh fetch.
func (c *Cache) ReplaceAccounts(accounts []api.Account) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM accounts"); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, a := range accounts {
		_, err := tx.Exec("INSERT INTO accounts (id, name, fetched_at) VALUES (?, ?, ?)", a.ID, a.Name, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Accounts reads the cached account list, alphabetical.
func (c *Cache) Accounts() ([]api.Account, error) {
	rows, err := c.db.Query("SELECT id, name FROM accounts ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var accounts []api.Account
	for rows.Next() {
		var a api.Account
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// ReplaceRecurring swaps the cached recurring-expense templates.
func (c *Cache) ReplaceRecurring(recurring []api.RecurringExpense) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM recurring_expenses"); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range recurring {
		_, err := tx.Exec(`INSERT INTO recurring_expenses (id, name, amount, bank_account_id, deduct_day, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?)`, r.ID, r.Name, r.Amount, r.BankAccountID, r.DeductDay, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Recurring reads the cached recurring-expense templates, alphabetical.
func (c *Cache) Recurring() ([]api.RecurringExpense, error) {
	rows, err := c.db.Query(`SELECT id, name, amount, bank_account_id, deduct_day
		FROM recurring_expenses ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var recurring []api.RecurringExpense
	for rows.Next() {
		var r api.RecurringExpense
		if err := rows.Scan(&r.ID, &r.Name, &r.Amount, &r.BankAccountID, &r.DeductDay); err != nil {
			return nil, err
		}
		recurring = append(recurring, r)
	}
	return recurring, rows.Err()
}

// FetchedAt returns when the budgets table was last refreshed, or the
// zero time if it never was.
func (c *Cache) FetchedAt() (time.Time, error) {
	var raw sql.NullString
	err := c.db.QueryRow("SELECT MAX(fetched_at) FROM budgets").Scan(&raw)
	if err != nil {
		return time.Time{}, err
	}
	if !raw.Valid || raw.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw.String)
}
