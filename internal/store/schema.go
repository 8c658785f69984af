package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS budgets (
	id         TEXT PRIMARY KEY,
	month      INTEGER NOT NULL,
	year       INTEGER NOT NULL,
	status     TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS recurring_expenses (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	amount          REAL NOT NULL,
	bank_account_id TEXT NOT NULL,
	deduct_day      INTEGER NOT NULL DEFAULT 0,
	fetched_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_budgets_month ON budgets(year, month);
`
