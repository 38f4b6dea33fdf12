package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finpersona/seedgen/internal/domain"
)

// Same fixture hash as the script sink; seeded users share one password.
const seedPasswordHash = "$2b$12$PsoHAtQzRQeGTzRGFj06ge64vKnjHRcIzmkJgTY3VouoMVTRO5Pyy"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR NOT NULL UNIQUE,
		phonenumber VARCHAR NOT NULL UNIQUE,
		full_name VARCHAR NOT NULL,
		hashed_password VARCHAR NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		bank_name VARCHAR NOT NULL,
		account_number_masked VARCHAR NOT NULL,
		account_type VARCHAR NOT NULL,
		balance NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id UUID PRIMARY KEY,
		account_id UUID NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
		date TIMESTAMPTZ NOT NULL,
		amount NUMERIC(10,2) NOT NULL,
		currency VARCHAR(3) NOT NULL,
		type VARCHAR(10) NOT NULL,
		status VARCHAR(15) NOT NULL,
		description VARCHAR,
		merchant VARCHAR,
		category VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS stock_instruments (
		id UUID PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		symbol VARCHAR(20) NOT NULL,
		name VARCHAR(255),
		quantity NUMERIC(18,6) NOT NULL DEFAULT 0,
		average_buy_price NUMERIC(18,6),
		current_price NUMERIC(18,6),
		currency VARCHAR(10),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_stock_instruments_user_id_id UNIQUE (user_id, id),
		CONSTRAINT uq_stock_instruments_user_id_symbol UNIQUE (user_id, symbol)
	)`,
	`CREATE INDEX IF NOT EXISTS ix_users_username ON users (username)`,
	`CREATE INDEX IF NOT EXISTS ix_users_phonenumber ON users (phonenumber)`,
	`CREATE INDEX IF NOT EXISTS ix_stock_instruments_user_id ON stock_instruments (user_id)`,
}

// DatasetSink implements domain.DatasetSink against a live database. All
// data rows go through a single transaction committed at Close, so an
// aborted run leaves no partial dataset behind. Schema statements run
// outside the transaction; they are idempotent either way.
type DatasetSink struct {
	db *DB
	tx *sql.Tx
}

// NewDatasetSink creates a database-backed sink.
func NewDatasetSink(db *DB) *DatasetSink {
	return &DatasetSink{db: db}
}

// WriteSchema ensures the four tables and their lookup indexes exist.
func (s *DatasetSink) WriteSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// SeedIdentity inserts the persona's user row if absent.
func (s *DatasetSink) SeedIdentity(ctx context.Context, p *domain.Persona, createdAt time.Time) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (user_id, username, phonenumber, full_name, hashed_password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err = tx.ExecContext(ctx, query,
		p.Identity.ID, p.Username(), p.PhoneNumber(), p.Identity.FullName, seedPasswordHash, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}
	return nil
}

// SeedAccount inserts one account row if absent.
func (s *DatasetSink) SeedAccount(ctx context.Context, userID uuid.UUID, acct domain.Account) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO accounts (user_id, account_id, bank_name, account_number_masked, account_type, balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id) DO NOTHING
	`
	_, err = tx.ExecContext(ctx, query,
		userID, acct.ID, acct.BankName, acct.NumberMasked, acct.AccountType, acct.OpeningBalance.StringFixed(2))
	if err != nil {
		return fmt.Errorf("failed to seed account: %w", err)
	}
	return nil
}

// SeedStockHolding inserts one portfolio row, skipping symbols the user
// already holds (one row per user and symbol).
func (s *DatasetSink) SeedStockHolding(ctx context.Context, userID uuid.UUID, holding domain.StockHolding) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO stock_instruments (id, user_id, symbol, name, quantity, average_buy_price, current_price, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, symbol) DO NOTHING
	`
	_, err = tx.ExecContext(ctx, query,
		uuid.New(), userID.String(), holding.Symbol, holding.Name,
		holding.Quantity.StringFixed(6), holding.AverageBuyPrice.StringFixed(6),
		holding.CurrentPrice.StringFixed(6), holding.Currency)
	if err != nil {
		return fmt.Errorf("failed to seed stock holding: %w", err)
	}
	return nil
}

// WriteTransaction inserts one generated transaction row.
func (s *DatasetSink) WriteTransaction(ctx context.Context, t *domain.Transaction) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (transaction_id, account_id, date, amount, currency, type, status, description, merchant, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, query,
		t.ID, t.AccountID, t.Timestamp.UTC(), t.Amount.StringFixed(2),
		t.Currency, string(t.Direction), string(t.Status),
		t.Description, t.Merchant, t.Category)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// Close commits the run. Without any data writes it is a no-op.
func (s *DatasetSink) Close(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	s.tx = nil
	return nil
}

// Rollback discards the pending run after a failure. Safe to call when
// nothing is pending.
func (s *DatasetSink) Rollback() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}

// begin lazily opens the data transaction on first write.
func (s *DatasetSink) begin(ctx context.Context) (*sql.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.tx = tx
	return tx, nil
}
