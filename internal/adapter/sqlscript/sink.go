// Package sqlscript builds a persona's dataset as a single SQL script:
// idempotent schema statements, user/account/stock seed rows, then the
// transaction stream. The whole artifact is assembled in memory and
// written atomically at Close, so a failed run leaves no partial file.
package sqlscript

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/finpersona/seedgen/internal/domain"
)

// Seeded users all get the same bcrypt hash; password material is outside
// the generator's scope.
const seedPasswordHash = "$2b$12$PsoHAtQzRQeGTzRGFj06ge64vKnjHRcIzmkJgTY3VouoMVTRO5Pyy"

const timestampLayout = "2006-01-02T15:04:05Z"

const schemaDDL = `CREATE TABLE IF NOT EXISTS users (
    user_id UUID PRIMARY KEY,
    username VARCHAR NOT NULL UNIQUE,
    phonenumber VARCHAR NOT NULL UNIQUE,
    full_name VARCHAR NOT NULL,
    hashed_password VARCHAR NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS accounts (
    account_id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    bank_name VARCHAR NOT NULL,
    account_number_masked VARCHAR NOT NULL,
    account_type VARCHAR NOT NULL,
    balance NUMERIC(12,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
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
);

CREATE TABLE IF NOT EXISTS stock_instruments (
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
);

CREATE INDEX IF NOT EXISTS ix_users_username ON users (username);
CREATE INDEX IF NOT EXISTS ix_users_phonenumber ON users (phonenumber);
CREATE INDEX IF NOT EXISTS ix_stock_instruments_user_id ON stock_instruments (user_id);

`

// Sink implements domain.DatasetSink by accumulating SQL statements in
// memory. Not safe for concurrent use; one sink serves one persona run.
type Sink struct {
	personaName string
	path        string
	buf         bytes.Buffer
	count       int
	stocksOpen  bool

	// Now stamps the header comment. Overridable so fixed-seed runs can
	// produce byte-identical artifacts.
	Now func() time.Time

	// NewID mints transaction and stock row ids. Overridable for the
	// same reason as Now.
	NewID func() uuid.UUID
}

// New creates a sink that writes the finished script to path at Close.
func New(path, personaName string) *Sink {
	return &Sink{
		personaName: personaName,
		path:        path,
		Now:         time.Now,
		NewID:       uuid.New,
	}
}

// WriteSchema emits the header comments and the idempotent DDL section.
func (s *Sink) WriteSchema(_ context.Context) error {
	fmt.Fprintf(&s.buf, "-- Hyper-realistic 1-Year Transaction Data for Persona: %s\n", s.personaName)
	fmt.Fprintf(&s.buf, "-- Generated on: %s\n\n", s.Now().UTC().Format(timestampLayout))
	s.buf.WriteString("-- 1) CREATE TABLES\n")
	s.buf.WriteString(schemaDDL)
	return nil
}

// SeedIdentity emits the user upsert followed by the section header for
// account rows.
func (s *Sink) SeedIdentity(_ context.Context, p *domain.Persona, createdAt time.Time) error {
	s.buf.WriteString("-- 2) Insert persona (user + accounts)\n")
	fmt.Fprintf(&s.buf,
		"INSERT INTO users (user_id, username, phonenumber, full_name, hashed_password, created_at) VALUES ('%s', %s, %s, %s, %s, '%s') ON CONFLICT (user_id) DO NOTHING;\n",
		p.Identity.ID,
		pq.QuoteLiteral(p.Username()),
		pq.QuoteLiteral(p.PhoneNumber()),
		pq.QuoteLiteral(p.Identity.FullName),
		pq.QuoteLiteral(seedPasswordHash),
		createdAt.UTC().Format(timestampLayout),
	)
	return nil
}

// SeedAccount emits one account upsert.
func (s *Sink) SeedAccount(_ context.Context, userID uuid.UUID, acct domain.Account) error {
	fmt.Fprintf(&s.buf,
		"INSERT INTO accounts (user_id, account_id, bank_name, account_number_masked, account_type, balance) VALUES ('%s', '%s', %s, %s, %s, %s) ON CONFLICT (account_id) DO NOTHING;\n",
		userID,
		acct.ID,
		pq.QuoteLiteral(acct.BankName),
		pq.QuoteLiteral(acct.NumberMasked),
		pq.QuoteLiteral(acct.AccountType),
		acct.OpeningBalance.StringFixed(2),
	)
	return nil
}

// SeedStockHolding emits one portfolio row with a fresh id. Prices and
// quantities are written at the schema's 6-decimal precision.
func (s *Sink) SeedStockHolding(_ context.Context, userID uuid.UUID, holding domain.StockHolding) error {
	if !s.stocksOpen {
		s.buf.WriteString("\n-- 3) STOCK HOLDINGS\n")
		s.stocksOpen = true
	}
	fmt.Fprintf(&s.buf,
		"INSERT INTO stock_instruments (id, user_id, symbol, name, quantity, average_buy_price, current_price, currency) VALUES ('%s', '%s', %s, %s, %s, %s, %s, %s);\n",
		s.NewID(),
		userID,
		pq.QuoteLiteral(holding.Symbol),
		pq.QuoteLiteral(holding.Name),
		holding.Quantity.StringFixed(6),
		holding.AverageBuyPrice.StringFixed(6),
		holding.CurrentPrice.StringFixed(6),
		pq.QuoteLiteral(holding.Currency),
	)
	return nil
}

// WriteTransaction appends one transaction insert, rounding the sampled
// amount to currency precision here at the emission boundary.
func (s *Sink) WriteTransaction(_ context.Context, tx *domain.Transaction) error {
	if s.count == 0 {
		s.buf.WriteString("\n-- 4) TRANSACTIONS\n")
	}
	fmt.Fprintf(&s.buf,
		"INSERT INTO transactions (transaction_id, account_id, date, amount, currency, type, status, description, merchant, category) VALUES ('%s', '%s', '%s', %s, %s, '%s', '%s', %s, %s, %s);\n",
		tx.ID,
		tx.AccountID,
		tx.Timestamp.UTC().Format(timestampLayout),
		tx.Amount.StringFixed(2),
		pq.QuoteLiteral(tx.Currency),
		tx.Direction,
		tx.Status,
		pq.QuoteLiteral(tx.Description),
		pq.QuoteLiteral(tx.Merchant),
		pq.QuoteLiteral(tx.Category),
	)
	s.count++
	return nil
}

// Close writes the completed script to disk: temp file in the target
// directory, then rename, so readers never observe a partial artifact.
func (s *Sink) Close(_ context.Context) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrArtifactWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(s.buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrArtifactWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrArtifactWrite, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrArtifactWrite, err)
	}
	return nil
}

// Count returns the number of transactions appended so far.
func (s *Sink) Count() int {
	return s.count
}

// Bytes returns the artifact assembled so far.
func (s *Sink) Bytes() []byte {
	return s.buf.Bytes()
}
